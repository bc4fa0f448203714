package users

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joao-fontenele/shopflow/internal/httpx"
)

type Handler struct {
	repo   *UserRepository
	logger *slog.Logger
}

func NewHandler(repo *UserRepository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/users", h.HandleList)
	r.Post("/api/users", h.HandleCreate)
	r.Get("/api/users/{id}", h.HandleGet)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	users := h.repo.List()
	h.logger.InfoContext(r.Context(), "users listed", "count", len(users))
	httpx.WriteJSON(w, h.logger, http.StatusOK, users)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid user id")
		return
	}

	user, ok := h.repo.GetByID(id)
	if !ok {
		httpx.WriteError(w, h.logger, http.StatusNotFound, "user not found")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusOK, user)
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	user := h.repo.Create(req.Name, req.Email)

	h.logger.InfoContext(r.Context(), "user created", "user_id", user.ID)
	httpx.WriteJSON(w, h.logger, http.StatusOK, user)
}
