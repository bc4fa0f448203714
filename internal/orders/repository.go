package orders

import (
	"github.com/joao-fontenele/shopflow/internal/domain"
	"github.com/joao-fontenele/shopflow/internal/store"
)

type OrderRepository struct {
	orders *store.Store[domain.Order]
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: store.New[domain.Order]()}
}

// Create assigns the next order id and stores the order in one step.
func (r *OrderRepository) Create(order domain.Order) domain.Order {
	return r.orders.Insert(func(id int64) domain.Order {
		order.ID = id
		return order
	})
}

func (r *OrderRepository) GetByID(id int64) (*domain.Order, bool) {
	order, ok := r.orders.Get(id)
	if !ok {
		return nil, false
	}
	return &order, true
}

func (r *OrderRepository) List() []domain.Order {
	return r.orders.List()
}
