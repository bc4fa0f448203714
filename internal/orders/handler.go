package orders

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joao-fontenele/shopflow/internal/httpx"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/orders", h.HandleList)
	r.Post("/api/orders", h.HandleCreate)
	r.Get("/api/orders/{id}", h.HandleGet)
}

type createOrderRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req.UserID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, ErrUserNotFound):
		httpx.WriteError(w, h.logger, http.StatusNotFound, ErrUserNotFound.Error())
		return
	case errors.Is(err, ErrProductNotFound):
		httpx.WriteError(w, h.logger, http.StatusNotFound, ErrProductNotFound.Error())
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "failed to create order", "error", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusOK, order)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid order id")
		return
	}

	order, ok := h.service.GetOrder(id)
	if !ok {
		httpx.WriteError(w, h.logger, http.StatusNotFound, "order not found")
		return
	}

	h.logger.InfoContext(r.Context(), "order retrieved", "order_id", order.ID)
	httpx.WriteJSON(w, h.logger, http.StatusOK, order)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	orders := h.service.ListOrders()
	h.logger.InfoContext(r.Context(), "orders listed", "count", len(orders))
	httpx.WriteJSON(w, h.logger, http.StatusOK, orders)
}
