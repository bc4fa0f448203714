package notifications

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joao-fontenele/shopflow/internal/httpx"
)

type Handler struct {
	repo   *NotificationRepository
	logger *slog.Logger
}

func NewHandler(repo *NotificationRepository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/notifications", h.HandleList)
	r.Post("/api/notifications", h.HandleSend)
	r.Get("/api/notifications/user/{userId}", h.HandleListByUser)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, h.logger, http.StatusOK, h.repo.List())
}

func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.IDParam(r, "userId")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid user id")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusOK, h.repo.ListByUser(userID))
}

type sendRequest struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	notification := h.repo.Send(req.UserID, req.Message)

	h.logger.InfoContext(r.Context(), "notification sent",
		"notification_id", notification.ID, "user_id", notification.UserID, "message", notification.Message)
	httpx.WriteJSON(w, h.logger, http.StatusOK, notification)
}
