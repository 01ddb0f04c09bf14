package users_test

import (
	"context"
	"errors"
	"testing"

	"pet-shop-api/internal/adapters/storage/memory"
	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/rules"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/storage"
)

type fixture struct {
	db    *memory.DB
	users *users.Service
	pets  *pets.Service
}

func newFixture(emptyNotFound bool) fixture {
	db := memory.NewDB()
	userRepo := memory.NewUserRepo(db)
	petRepo := memory.NewPetRepo(db)
	log := logger.NewNop()

	usersSvc := users.NewService(userRepo, petRepo, db, nil, log, users.Options{EmptyListNotFound: emptyNotFound})
	petsSvc := pets.NewService(petRepo, usersSvc, db, log, pets.Options{EmptyListNotFound: emptyNotFound})
	return fixture{db: db, users: usersSvc, pets: petsSvc}
}

func (f fixture) mustUser(t *testing.T, email string) users.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), users.CreateInput{Email: email, Password: "secret123"})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func (f fixture) mustPet(t *testing.T, ownerID int64, name string) pets.Pet {
	t.Helper()
	p, err := f.pets.Create(context.Background(), ownerID, pets.CreateInput{AnimalName: name})
	if err != nil {
		t.Fatalf("create pet %s: %v", name, err)
	}
	return p
}

func TestCreate(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	u := f.mustUser(t, "a@x.com")
	if u.ID != 1 || u.Email != "a@x.com" || u.Pets == nil || len(u.Pets) != 0 {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash != "secret123abracadabra" {
		t.Fatalf("unexpected hash %q", u.PasswordHash)
	}

	cases := []struct {
		name string
		in   users.CreateInput
		want error
	}{
		{"duplicate email", users.CreateInput{Email: "a@x.com", Password: "secret123"}, rules.ErrConflict},
		{"bad email", users.CreateInput{Email: "not-an-email", Password: "secret123"}, rules.ErrUnprocessable},
		{"short password", users.CreateInput{Email: "b@x.com", Password: "short"}, rules.ErrUnprocessable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := f.users.Create(ctx, c.in); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestGet_EmbedsPets(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	u := f.mustUser(t, "a@x.com")
	f.mustPet(t, u.ID, "Rex")

	got, err := f.users.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Pets) != 1 || got.Pets[0].AnimalName != "Rex" {
		t.Fatalf("expected embedded pet, got %+v", got.Pets)
	}

	_, err = f.users.Get(ctx, 42)
	if !errors.Is(err, rules.ErrNotFound) || err.Error() != "user with id 42 not found" {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	strict := newFixture(true)
	if _, err := strict.users.List(ctx, storage.Page{Limit: 100}); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("expected NotFound on empty database, got %v", err)
	}

	lenient := newFixture(false)
	items, err := lenient.users.List(ctx, storage.Page{Limit: 100})
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("expected empty list, got %v %v", items, err)
	}

	strict.mustUser(t, "a@x.com")
	strict.mustUser(t, "b@x.com")
	items, err = strict.users.List(ctx, storage.Page{Skip: 1, Limit: 10})
	if err != nil || len(items) != 1 || items[0].Email != "b@x.com" {
		t.Fatalf("unexpected page: %+v %v", items, err)
	}

	if _, err := strict.users.List(ctx, storage.Page{Limit: 0}); !errors.Is(err, rules.ErrUnprocessable) {
		t.Fatalf("expected Unprocessable, got %v", err)
	}
}

func TestUpdateEmail(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	a := f.mustUser(t, "a@x.com")
	f.mustUser(t, "b@x.com")

	if _, err := f.users.UpdateEmail(ctx, a.ID, "b@x.com"); !errors.Is(err, rules.ErrConflict) {
		t.Fatalf("expected Conflict for taken email, got %v", err)
	}
	got, err := f.users.Get(ctx, a.ID)
	if err != nil || got.Email != "a@x.com" {
		t.Fatalf("rejected update must leave the user untouched, got %+v %v", got, err)
	}
	if _, err := f.users.UpdateEmail(ctx, a.ID, "a@x.com"); err != nil {
		t.Fatalf("own email must be accepted, got %v", err)
	}
	if _, err := f.users.UpdateEmail(ctx, 99, "z@x.com"); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := f.users.UpdateEmail(ctx, a.ID, "broken"); !errors.Is(err, rules.ErrUnprocessable) {
		t.Fatalf("expected Unprocessable, got %v", err)
	}

	u, err := f.users.UpdateEmail(ctx, a.ID, "c@x.com")
	if err != nil || u.Email != "c@x.com" {
		t.Fatalf("update: %+v %v", u, err)
	}

	// el email anterior queda libre
	f.mustUser(t, "a@x.com")
}

// duplicateOnUpdate simula que otro request tomó el email entre la
// verificación y la escritura.
type duplicateOnUpdate struct {
	users.Repository
}

func (duplicateOnUpdate) Update(context.Context, users.User) (users.User, error) {
	return users.User{}, storage.ErrDuplicate
}

func TestUpdateEmail_DuplicateOnWrite(t *testing.T) {
	db := memory.NewDB()
	repo := memory.NewUserRepo(db)
	svc := users.NewService(duplicateOnUpdate{repo}, memory.NewPetRepo(db), db, nil, logger.NewNop(), users.Options{})
	ctx := context.Background()

	a, err := svc.Create(ctx, users.CreateInput{Email: "a@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.UpdateEmail(ctx, a.ID, "free@x.com")
	if !errors.Is(err, rules.ErrConflict) {
		t.Fatalf("expected Conflict when the write reports a duplicate, got %v", err)
	}
	var re *rules.Error
	if !errors.As(err, &re) || re.Message != "user with email free@x.com is already registered" {
		t.Fatalf("unexpected error message: %v", err)
	}

	got, err := svc.Get(ctx, a.ID)
	if err != nil || got.Email != "a@x.com" {
		t.Fatalf("user must keep its email, got %+v %v", got, err)
	}
}

func TestDelete_CascadesPets(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	a := f.mustUser(t, "a@x.com")
	b := f.mustUser(t, "b@x.com")
	f.mustPet(t, a.ID, "Rex")
	f.mustPet(t, a.ID, "Tom")
	keep := f.mustPet(t, b.ID, "Rex")

	if err := f.users.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.users.Get(ctx, a.ID); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("user must be gone, got %v", err)
	}

	all, err := f.pets.List(ctx, storage.Page{Limit: 100})
	if err != nil || len(all) != 1 || all[0].ID != keep.ID {
		t.Fatalf("only b's pet must remain, got %+v %v", all, err)
	}

	if err := f.users.Delete(ctx, a.ID); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	if err := f.users.DeleteAll(ctx); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("expected NotFound on empty database, got %v", err)
	}

	// sin mascotas no es error, solo se loguea
	f.mustUser(t, "a@x.com")
	if err := f.users.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all without pets: %v", err)
	}

	u := f.mustUser(t, "b@x.com")
	f.mustPet(t, u.ID, "Rex")
	if err := f.users.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if _, err := f.pets.List(ctx, storage.Page{Limit: 100}); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("pets must be empty, got %v", err)
	}
	if _, err := f.users.List(ctx, storage.Page{Limit: 100}); !errors.Is(err, rules.ErrNotFound) {
		t.Fatalf("users must be empty, got %v", err)
	}
}

func TestOwnerExists(t *testing.T) {
	f := newFixture(true)
	u := f.mustUser(t, "a@x.com")

	ok, err := f.users.OwnerExists(context.Background(), u.ID)
	if err != nil || !ok {
		t.Fatalf("expected owner to exist")
	}
	ok, err = f.users.OwnerExists(context.Background(), 77)
	if err != nil || ok {
		t.Fatalf("expected owner to be missing")
	}
}

func TestHashPassword(t *testing.T) {
	if got := users.HashPassword("secret123"); got != "secret123abracadabra" {
		t.Fatalf("unexpected hash %q", got)
	}
}
