package memory

import (
	"context"
	"maps"
	"slices"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/ports/storage"
)

type petRepo struct {
	db *DB
}

func NewPetRepo(db *DB) pets.Repository {
	return &petRepo{db: db}
}

// Create exige owner existente (FK) y par (animal_name, description) libre para el owner.
func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[p.OwnerID]; !ok {
		return pets.Pet{}, storage.ErrNotFound
	}
	if r.pairTakenLocked(p, 0) {
		return pets.Pet{}, storage.ErrDuplicate
	}

	r.db.nextPetID++
	p.ID = r.db.nextPetID
	r.db.pets[p.ID] = p

	id := p.ID
	r.db.onRollbackLocked(ctx, func() { delete(r.db.pets, id) })
	return p, nil
}

func (r *petRepo) GetScoped(ctx context.Context, ownerID, petID int64) (pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.pets[petID]
	if !ok || p.OwnerID != ownerID {
		return pets.Pet{}, storage.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) FindByNameAndDescription(ctx context.Context, ownerID int64, animalName string, description *string) (pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	probe := pets.Pet{OwnerID: ownerID, AnimalName: animalName, Description: description}
	for _, id := range r.sortedIDsLocked() {
		if samePair(r.db.pets[id], probe) {
			return r.db.pets[id], nil
		}
	}
	return pets.Pet{}, storage.ErrNotFound
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range r.sortedIDsLocked() {
		if p := r.db.pets[id]; p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *petRepo) List(ctx context.Context, page storage.Page) ([]pets.Pet, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return paginate(slices.Collect(maps.Keys(r.db.pets)), r.db.pets, &page), nil
}

func (r *petRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return paginate(slices.Collect(maps.Keys(r.db.pets)), r.db.pets, nil), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.pets[p.ID]
	if !ok {
		return pets.Pet{}, storage.ErrNotFound
	}
	// el owner no cambia en un update
	p.OwnerID = current.OwnerID
	if r.pairTakenLocked(p, p.ID) {
		return pets.Pet{}, storage.ErrDuplicate
	}
	r.db.pets[p.ID] = p

	r.db.onRollbackLocked(ctx, func() { r.db.pets[current.ID] = current })
	return p, nil
}

func (r *petRepo) Delete(ctx context.Context, p pets.Pet) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	prev, ok := r.db.pets[p.ID]
	if !ok {
		return storage.ErrNotFound
	}
	delete(r.db.pets, p.ID)

	r.db.onRollbackLocked(ctx, func() { r.db.pets[prev.ID] = prev })
	return nil
}

func (r *petRepo) pairTakenLocked(p pets.Pet, exceptID int64) bool {
	for _, other := range r.db.pets {
		if other.ID != exceptID && samePair(other, p) {
			return true
		}
	}
	return false
}

func (r *petRepo) sortedIDsLocked() []int64 {
	ids := slices.Collect(maps.Keys(r.db.pets))
	slices.Sort(ids)
	return ids
}

// samePair replica el índice único (owner_id, animal_name, COALESCE(description, '')).
func samePair(a, b pets.Pet) bool {
	return a.OwnerID == b.OwnerID && a.AnimalName == b.AnimalName && deref(a.Description) == deref(b.Description)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
