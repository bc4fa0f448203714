package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joao-fontenele/shopflow/internal/config"
)

func newTestRouter(url string, client *http.Client) *Router {
	return NewServiceRouter(config.ServiceURLs{
		UserServiceURL:         url,
		ProductServiceURL:      url,
		OrderServiceURL:        url,
		NotificationServiceURL: url,
	}, client)
}

func TestRouter_Match(t *testing.T) {
	router := NewServiceRouter(config.ServiceURLs{
		UserServiceURL:         "http://users",
		ProductServiceURL:      "http://products",
		OrderServiceURL:        "http://orders",
		NotificationServiceURL: "http://notifications",
	}, http.DefaultClient)

	tests := []struct {
		path    string
		service string
		ok      bool
	}{
		{"/api/users", "users", true},
		{"/api/users/1", "users", true},
		{"/api/products/1/stock", "products", true},
		{"/api/orders", "orders", true},
		{"/api/notifications/user/1", "notifications", true},
		{"/api/usersx", "", false},
		{"/api/payments/1", "", false},
		{"/users/1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, ok := router.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("expected match %v, got %v", tt.ok, ok)
			}
			if route.Service != tt.service {
				t.Errorf("expected service %q, got %q", tt.service, route.Service)
			}
		})
	}
}

func TestRouter_Route(t *testing.T) {
	t.Run("GET relays catalog payload with 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/products/1" {
				t.Errorf("expected /api/products/1, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"price":"999.99","stock":10}`))
		}))
		defer server.Close()

		resp, err := newTestRouter(server.URL, server.Client()).Route(context.Background(), http.MethodGet, "/api/products/1", "", nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
		if string(resp.Body) != `{"id":1,"price":"999.99","stock":10}` {
			t.Errorf("unexpected body: %s", resp.Body)
		}
		if resp.ContentType != "application/json" {
			t.Errorf("expected application/json, got %s", resp.ContentType)
		}
	})

	t.Run("POST forwards body and relays payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if string(body) != `{"userId":1,"productId":1,"quantity":2}` {
				t.Errorf("unexpected body: %s", body)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":1}`))
		}))
		defer server.Close()

		resp, err := newTestRouter(server.URL, server.Client()).Route(context.Background(), http.MethodPost, "/api/orders", "",
			[]byte(`{"userId":1,"productId":1,"quantity":2}`), "application/json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
		if string(resp.Body) != `{"id":1}` {
			t.Errorf("unexpected body: %s", resp.Body)
		}
	})

	t.Run("PUT discards payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("expected PUT, got %s", r.Method)
			}
			if r.URL.RawQuery != "quantity=3" {
				t.Errorf("expected quantity=3, got %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"id":1,"stock":7}`))
		}))
		defer server.Close()

		resp, err := newTestRouter(server.URL, server.Client()).Route(context.Background(), http.MethodPut, "/api/products/1/stock", "quantity=3", nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
		if len(resp.Body) != 0 {
			t.Errorf("expected empty body, got %s", resp.Body)
		}
	})

	t.Run("DELETE sends no body and answers empty 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("expected DELETE, got %s", r.Method)
			}
			if r.ContentLength > 0 {
				t.Errorf("expected no body, got length %d", r.ContentLength)
			}
			_, _ = w.Write([]byte(`ignored`))
		}))
		defer server.Close()

		resp, err := newTestRouter(server.URL, server.Client()).Route(context.Background(), http.MethodDelete, "/api/users/2", "", []byte(`{"x":1}`), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK || len(resp.Body) != 0 {
			t.Errorf("expected empty 200, got %d %s", resp.StatusCode, resp.Body)
		}
	})

	t.Run("unsupported method never reaches a downstream", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		router := newTestRouter(server.URL, server.Client())
		for _, path := range []string{"/api/users/1", "/api/products/1", "/api/orders", "/api/notifications"} {
			resp, err := router.Route(context.Background(), http.MethodPatch, path, "", []byte(`{}`), "")
			if !errors.Is(err, ErrUnsupportedMethod) {
				t.Errorf("expected ErrUnsupportedMethod for %s, got %v", path, err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected status 400 for %s, got %d", path, resp.StatusCode)
			}
		}
		if calls.Load() != 0 {
			t.Errorf("expected no downstream calls, got %d", calls.Load())
		}
	})

	t.Run("transport failure becomes 500 service unavailable", func(t *testing.T) {
		resp, err := newTestRouter("http://localhost:99999", &http.Client{}).Route(context.Background(), http.MethodGet, "/api/users/1", "", nil, "")
		if err == nil {
			t.Fatal("expected error")
		}
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", resp.StatusCode)
		}
		if !strings.Contains(string(resp.Body), "Service unavailable") {
			t.Errorf("expected body to contain 'Service unavailable', got %s", resp.Body)
		}
		if !strings.Contains(string(resp.Body), err.Error()) {
			t.Errorf("expected body to embed the error %q, got %s", err, resp.Body)
		}
	})

	t.Run("downstream 404 becomes 500", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"user not found"}`))
		}))
		defer server.Close()

		resp, err := newTestRouter(server.URL, server.Client()).Route(context.Background(), http.MethodGet, "/api/users/9", "", nil, "")
		var downstream *DownstreamError
		if !errors.As(err, &downstream) {
			t.Fatalf("expected DownstreamError, got %v", err)
		}
		if downstream.StatusCode != http.StatusNotFound {
			t.Errorf("expected downstream status 404, got %d", downstream.StatusCode)
		}
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", resp.StatusCode)
		}
		if !strings.HasPrefix(string(resp.Body), "Service unavailable: 404 Not Found") {
			t.Errorf("unexpected body: %s", resp.Body)
		}
	})

	t.Run("unmatched path reports no route", func(t *testing.T) {
		resp, err := newTestRouter("http://unused", http.DefaultClient).Route(context.Background(), http.MethodGet, "/api/payments", "", nil, "")
		if !errors.Is(err, ErrNoRoute) {
			t.Errorf("expected ErrNoRoute, got %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", resp.StatusCode)
		}
	})
}
