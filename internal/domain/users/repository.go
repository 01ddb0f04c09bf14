package users

import (
	"context"

	"pet-shop-api/internal/ports/storage"
)

// Repository: lookups de cero-o-uno devuelven storage.ErrNotFound; Create/Update
// devuelven storage.ErrDuplicate si el email ya está tomado.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, page storage.Page) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, u User) error
}
