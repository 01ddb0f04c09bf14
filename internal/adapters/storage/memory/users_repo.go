package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/ports/storage"
)

type userRepo struct {
	db *DB
}

func NewUserRepo(db *DB) users.Repository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.emailTakenLocked(u.Email, 0) {
		return users.User{}, storage.ErrDuplicate
	}

	r.db.nextUserID++
	u.ID = r.db.nextUserID
	u.Pets = nil
	r.db.users[u.ID] = u

	id := u.ID
	r.db.onRollbackLocked(ctx, func() { delete(r.db.users, id) })
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return users.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, storage.ErrNotFound
}

func (r *userRepo) List(ctx context.Context, page storage.Page) ([]users.User, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return paginate(slices.Collect(maps.Keys(r.db.users)), r.db.users, &page), nil
}

func (r *userRepo) ListAll(ctx context.Context) ([]users.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return paginate(slices.Collect(maps.Keys(r.db.users)), r.db.users, nil), nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.users[u.ID]
	if !ok {
		return users.User{}, storage.ErrNotFound
	}
	if r.emailTakenLocked(u.Email, u.ID) {
		return users.User{}, storage.ErrDuplicate
	}

	prev := current
	current.Email = u.Email
	current.PasswordHash = u.PasswordHash
	r.db.users[u.ID] = current

	r.db.onRollbackLocked(ctx, func() { r.db.users[prev.ID] = prev })
	return current, nil
}

// Delete respeta la FK: un user con mascotas no se puede borrar.
func (r *userRepo) Delete(ctx context.Context, u users.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	prev, ok := r.db.users[u.ID]
	if !ok {
		return storage.ErrNotFound
	}
	for _, p := range r.db.pets {
		if p.OwnerID == u.ID {
			return fmt.Errorf("memory: user %d still owns pet %d", u.ID, p.ID)
		}
	}
	delete(r.db.users, u.ID)

	r.db.onRollbackLocked(ctx, func() { r.db.users[prev.ID] = prev })
	return nil
}

func (r *userRepo) emailTakenLocked(email string, exceptID int64) bool {
	for _, other := range r.db.users {
		if other.ID != exceptID && other.Email == email {
			return true
		}
	}
	return false
}
