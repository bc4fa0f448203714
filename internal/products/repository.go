package products

import (
	"github.com/shopspring/decimal"

	"github.com/joao-fontenele/shopflow/internal/domain"
	"github.com/joao-fontenele/shopflow/internal/store"
)

type ProductRepository struct {
	products *store.Store[domain.Product]
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: store.New[domain.Product]()}
}

func NewSeededProductRepository() *ProductRepository {
	r := NewProductRepository()
	r.products.Put(1, domain.Product{
		ID: 1, Name: "Laptop", Description: "Gaming Laptop",
		Price: decimal.RequireFromString("999.99"), Stock: 10,
	})
	r.products.Put(2, domain.Product{
		ID: 2, Name: "Mouse", Description: "Wireless Mouse",
		Price: decimal.RequireFromString("29.99"), Stock: 50,
	})
	return r
}

func (r *ProductRepository) List() []domain.Product {
	return r.products.List()
}

func (r *ProductRepository) GetByID(id int64) (*domain.Product, bool) {
	product, ok := r.products.Get(id)
	if !ok {
		return nil, false
	}
	return &product, true
}

func (r *ProductRepository) Create(p domain.Product) domain.Product {
	return r.products.Insert(func(id int64) domain.Product {
		p.ID = id
		return p
	})
}

// DecrementStock subtracts quantity from the product's stock. The result may
// be negative.
func (r *ProductRepository) DecrementStock(id int64, quantity int) (*domain.Product, bool) {
	product, ok := r.products.Update(id, func(p domain.Product) domain.Product {
		p.Stock -= quantity
		return p
	})
	if !ok {
		return nil, false
	}
	return &product, true
}
