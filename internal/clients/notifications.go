package clients

import (
	"context"
	"net/http"

	"github.com/joao-fontenele/shopflow/internal/domain"
)

type NotificationClient struct {
	client
}

func NewNotificationClient(baseURL string, httpClient *http.Client) *NotificationClient {
	return &NotificationClient{client{baseURL: baseURL, httpClient: httpClient}}
}

type sendNotificationRequest struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

func (c *NotificationClient) SendNotification(ctx context.Context, userID int64, message string) (*domain.Notification, error) {
	req := sendNotificationRequest{UserID: userID, Message: message}

	var notification domain.Notification
	if err := c.do(ctx, http.MethodPost, "/api/notifications", req, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}
