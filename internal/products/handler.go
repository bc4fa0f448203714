package products

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/joao-fontenele/shopflow/internal/domain"
	"github.com/joao-fontenele/shopflow/internal/httpx"
)

type Handler struct {
	repo   *ProductRepository
	logger *slog.Logger
}

func NewHandler(repo *ProductRepository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/products", h.HandleList)
	r.Post("/api/products", h.HandleCreate)
	r.Get("/api/products/{id}", h.HandleGet)
	r.Put("/api/products/{id}/stock", h.HandleUpdateStock)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	products := h.repo.List()
	h.logger.InfoContext(r.Context(), "products listed", "count", len(products))
	httpx.WriteJSON(w, h.logger, http.StatusOK, products)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid product id")
		return
	}

	product, ok := h.repo.GetByID(id)
	if !ok {
		httpx.WriteError(w, h.logger, http.StatusNotFound, "product not found")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusOK, product)
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	product := h.repo.Create(domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})

	h.logger.InfoContext(r.Context(), "product created", "product_id", product.ID)
	httpx.WriteJSON(w, h.logger, http.StatusOK, product)
}

func (h *Handler) HandleUpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid product id")
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid quantity")
		return
	}

	product, ok := h.repo.DecrementStock(id, quantity)
	if !ok {
		httpx.WriteError(w, h.logger, http.StatusNotFound, "product not found")
		return
	}

	h.logger.InfoContext(r.Context(), "stock updated", "product_id", id, "quantity", quantity, "stock", product.Stock)
	httpx.WriteJSON(w, h.logger, http.StatusOK, product)
}
