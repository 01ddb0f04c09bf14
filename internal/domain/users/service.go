package users

import (
	"context"
	"errors"
	"fmt"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/rules"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/tracing"
	"pet-shop-api/internal/ports/storage"
)

type Options struct {
	// EmptyListNotFound: listados vacíos responden NotFound en vez de [].
	EmptyListNotFound bool
}

type Service struct {
	repo    Repository
	petRepo pets.Repository
	tx      storage.Transactor
	emails  *rules.EmailValidator
	log     logger.Logger
	tracer  *tracing.Tracer
	opts    Options
}

func NewService(
	repo Repository,
	petRepo pets.Repository,
	tx storage.Transactor,
	emails *rules.EmailValidator,
	log logger.Logger,
	opts Options,
) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(map[string]any{"module": "users"})
	if emails == nil {
		emails = rules.NewEmailValidator(rules.EmailOptions{}, log)
	}
	return &Service{
		repo:    repo,
		petRepo: petRepo,
		tx:      tx,
		emails:  emails,
		log:     log,
		tracer:  tracing.New(nil, "users"),
		opts:    opts,
	}
}

type CreateInput struct {
	Email    string
	Password string `label:"password" validate:"required,min=8"`
}

// Create registra un user con email libre y password "hasheado".
func (s *Service) Create(ctx context.Context, in CreateInput) (u User, err error) {
	ctx, span := s.tracer.Start(ctx, "users.Create")
	defer func() { tracing.End(span, err) }()

	in.Password = rules.Trim(in.Password)
	s.log.Info("attempt to create user", map[string]any{"email": rules.Trim(in.Email)})

	email, err := s.emails.Validate(ctx, in.Email)
	if err != nil {
		return User{}, err
	}
	if err := rules.ValidateInput(s.log, in); err != nil {
		return User{}, err
	}

	_, lookupErr := s.repo.GetByEmail(ctx, email)
	if err := rules.RequireAbsent(s.log, lookupErr, "user with this email is already registered"); err != nil {
		return User{}, err
	}

	u, err = s.repo.Create(ctx, User{Email: email, PasswordHash: HashPassword(in.Password)})
	if errors.Is(err, storage.ErrDuplicate) {
		return User{}, rules.Reject(s.log, rules.Conflict("user with this email is already registered"))
	}
	if err != nil {
		return User{}, err
	}
	u.Pets = []pets.Pet{}

	s.log.Info("user created", map[string]any{"user_id": u.ID, "email": u.Email})
	return u, nil
}

// Get devuelve el user con sus mascotas.
func (s *Service) Get(ctx context.Context, id int64) (u User, err error) {
	ctx, span := s.tracer.Start(ctx, "users.Get", "user.id", id)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to show user", map[string]any{"user_id": id})

	u, err = s.getByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if u.Pets, err = s.petRepo.ListByOwner(ctx, id); err != nil {
		return User{}, err
	}

	s.log.Info("user provided", map[string]any{"user_id": id})
	return u, nil
}

func (s *Service) List(ctx context.Context, page storage.Page) (items []User, err error) {
	ctx, span := s.tracer.Start(ctx, "users.List", "skip", page.Skip, "limit", page.Limit)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to show all users", map[string]any{"skip": page.Skip, "limit": page.Limit})

	if err := page.Validate(); err != nil {
		return nil, rules.Reject(s.log, rules.Unprocessable("skip must be >= 0 and limit must be > 0"))
	}
	items, err = s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && s.opts.EmptyListNotFound {
		return nil, rules.Reject(s.log, rules.NotFound("users database is empty"))
	}

	for i := range items {
		if items[i].Pets, err = s.petRepo.ListByOwner(ctx, items[i].ID); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []User{}
	}

	s.log.Info("users provided", map[string]any{"count": len(items)})
	return items, nil
}

// UpdateEmail: user existe -> email no usado por otro user -> persistir.
func (s *Service) UpdateEmail(ctx context.Context, id int64, newEmail string) (u User, err error) {
	ctx, span := s.tracer.Start(ctx, "users.UpdateEmail", "user.id", id)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to change user", map[string]any{"user_id": id})

	email, err := s.emails.Validate(ctx, newEmail)
	if err != nil {
		return User{}, err
	}

	u, err = s.getByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	other, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil && other.ID != u.ID:
		return User{}, rules.Reject(s.log, emailTaken(email))
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return User{}, err
	}

	u.Email = email
	u, err = s.repo.Update(ctx, u)
	if errors.Is(err, storage.ErrDuplicate) {
		return User{}, rules.Reject(s.log, emailTaken(email))
	}
	if err != nil {
		return User{}, err
	}

	s.log.Info("user changed", map[string]any{"user_id": id})
	return u, nil
}

// Delete confirma que el user existe y luego borra sus mascotas y al user,
// todo en una transacción (hijos antes que el padre).
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "users.Delete", "user.id", id)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to delete user", map[string]any{"user_id": id})

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.getByID(ctx, id)
		if err != nil {
			return err
		}

		owned, err := s.petRepo.ListByOwner(ctx, id)
		if err != nil {
			return err
		}
		if err := pets.DeleteEach(ctx, s.petRepo, s.log, owned); err != nil {
			return err
		}

		if err := s.repo.Delete(ctx, u); err != nil {
			return err
		}
		rules.LogDeleted(s.log, u)
		return nil
	})
}

// DeleteAll vacía pets (vacío solo se loguea) y luego users (vacío es NotFound).
func (s *Service) DeleteAll(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "users.DeleteAll")
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to clear users database", nil)

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		allPets, err := s.petRepo.ListAll(ctx)
		if err != nil {
			return err
		}
		if !rules.WarnIfEmpty(s.log, allPets, "pets database is empty") {
			if err := pets.DeleteEach(ctx, s.petRepo, s.log, allPets); err != nil {
				return err
			}
		}

		allUsers, err := s.repo.ListAll(ctx)
		if err != nil {
			return err
		}
		if _, err := rules.RequireNonEmpty(s.log, allUsers, "users database is empty"); err != nil {
			return err
		}
		for _, u := range allUsers {
			if err := s.repo.Delete(ctx, u); err != nil {
				return err
			}
			rules.LogDeleted(s.log, u)
		}
		return nil
	})
}

// OwnerExists implementa pets.OwnerLookup.
func (s *Service) OwnerExists(ctx context.Context, ownerID int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, ownerID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup owner %d: %w", ownerID, err)
	}
	return true, nil
}

func (s *Service) getByID(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	return rules.RequireFound(s.log, u, err, fmt.Sprintf("user with id %d not found", id))
}

func emailTaken(email string) *rules.Error {
	return rules.Conflict("user with email %s is already registered", email)
}
