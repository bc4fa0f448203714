package users

import (
	"github.com/joao-fontenele/shopflow/internal/domain"
	"github.com/joao-fontenele/shopflow/internal/store"
)

type UserRepository struct {
	users *store.Store[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: store.New[domain.User]()}
}

// NewSeededUserRepository returns a repository holding the two sample users
// every fresh identity service starts with.
func NewSeededUserRepository() *UserRepository {
	r := NewUserRepository()
	r.users.Put(1, domain.User{ID: 1, Name: "John Doe", Email: "john@example.com"})
	r.users.Put(2, domain.User{ID: 2, Name: "Jane Smith", Email: "jane@example.com"})
	return r
}

func (r *UserRepository) List() []domain.User {
	return r.users.List()
}

func (r *UserRepository) GetByID(id int64) (*domain.User, bool) {
	user, ok := r.users.Get(id)
	if !ok {
		return nil, false
	}
	return &user, true
}

func (r *UserRepository) Create(name, email string) domain.User {
	return r.users.Insert(func(id int64) domain.User {
		return domain.User{ID: id, Name: name, Email: email}
	})
}
