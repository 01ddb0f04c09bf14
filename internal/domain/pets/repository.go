package pets

import (
	"context"

	"pet-shop-api/internal/ports/storage"
)

// Repository: lookups de cero-o-uno devuelven storage.ErrNotFound; Create devuelve
// storage.ErrDuplicate si el par (animal_name, description) ya existe para el owner.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetScoped(ctx context.Context, ownerID, petID int64) (Pet, error)
	FindByNameAndDescription(ctx context.Context, ownerID int64, animalName string, description *string) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	List(ctx context.Context, page storage.Page) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, p Pet) error
}
