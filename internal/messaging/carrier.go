package messaging

import (
	"strings"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/propagation"
)

// headers adapts a kafka header list to propagation.TextMapCarrier. Keys
// match case-insensitively, since kafka keeps whatever case a producer wrote
// and propagators look up lower-case names.
type headers []kafka.Header

var _ propagation.TextMapCarrier = (*headers)(nil)

// MessageHeaders returns the carrier for msg's headers. Writes through it
// update msg.
func MessageHeaders(msg *kafka.Message) propagation.TextMapCarrier {
	return (*headers)(&msg.Headers)
}

func (h *headers) index(key string) int {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			return i
		}
	}
	return -1
}

func (h *headers) Get(key string) string {
	if i := h.index(key); i >= 0 {
		return string((*h)[i].Value)
	}
	return ""
}

func (h *headers) Set(key, value string) {
	key = strings.ToLower(key)
	if i := h.index(key); i >= 0 {
		(*h)[i] = kafka.Header{Key: key, Value: []byte(value)}
		return
	}
	*h = append(*h, kafka.Header{Key: key, Value: []byte(value)})
}

func (h *headers) Keys() []string {
	keys := make([]string, 0, len(*h))
	for _, hdr := range *h {
		keys = append(keys, strings.ToLower(hdr.Key))
	}
	return keys
}
