package pets

import (
	"context"
	"errors"
	"fmt"

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
	repo   Repository
	owners OwnerLookup
	tx     storage.Transactor
	log    logger.Logger
	tracer *tracing.Tracer
	opts   Options
}

func NewService(repo Repository, owners OwnerLookup, tx storage.Transactor, log logger.Logger, opts Options) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:   repo,
		owners: owners,
		tx:     tx,
		log:    log.With(map[string]any{"module": "pets"}),
		tracer: tracing.New(nil, "pets"),
		opts:   opts,
	}
}

type CreateInput struct {
	AnimalName  string  `label:"animal_name" validate:"required"`
	Description *string `label:"description"`
}

// Create agrega una mascota a un owner existente rechazando duplicados (nombre, descripción).
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (p Pet, err error) {
	ctx, span := s.tracer.Start(ctx, "pets.Create", "owner.id", ownerID)
	defer func() { tracing.End(span, err) }()

	in.AnimalName = rules.Trim(in.AnimalName)
	in.Description = rules.TrimOptional(in.Description)

	s.log.Info("attempt to add pet", map[string]any{"owner_id": ownerID, "animal_name": in.AnimalName})

	if err := rules.ValidateInput(s.log, in); err != nil {
		return Pet{}, err
	}
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return Pet{}, err
	}

	existing, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return Pet{}, err
	}
	for _, other := range existing {
		if other.AnimalName == in.AnimalName && rules.SameOptional(other.Description, in.Description) {
			return Pet{}, rules.Reject(s.log, duplicateForOwner(ownerID))
		}
	}

	p, err = s.repo.Create(ctx, Pet{
		AnimalName:  in.AnimalName,
		Description: in.Description,
		OwnerID:     ownerID,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// carrera: otro request insertó el mismo par entre el chequeo y el insert
		return Pet{}, rules.Reject(s.log, duplicateForOwner(ownerID))
	}
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet added", map[string]any{"owner_id": ownerID, "pet_id": p.ID, "animal_name": p.AnimalName})
	return p, nil
}

// Get busca una mascota siempre acotada a su owner.
func (s *Service) Get(ctx context.Context, ownerID, petID int64) (p Pet, err error) {
	ctx, span := s.tracer.Start(ctx, "pets.Get", "owner.id", ownerID, "pet.id", petID)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to show pet", map[string]any{"owner_id": ownerID, "pet_id": petID})

	p, err = s.getScoped(ctx, ownerID, petID)
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet provided", map[string]any{"owner_id": ownerID, "pet_id": petID})
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) (items []Pet, err error) {
	ctx, span := s.tracer.Start(ctx, "pets.ListByOwner", "owner.id", ownerID)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to show pets of user", map[string]any{"owner_id": ownerID})

	items, err = s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.listed(items, ownerHasNoPets(ownerID))
}

func (s *Service) List(ctx context.Context, page storage.Page) (items []Pet, err error) {
	ctx, span := s.tracer.Start(ctx, "pets.List", "skip", page.Skip, "limit", page.Limit)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to show all pets", map[string]any{"skip": page.Skip, "limit": page.Limit})

	if err := page.Validate(); err != nil {
		return nil, rules.Reject(s.log, rules.Unprocessable("skip must be >= 0 and limit must be > 0"))
	}
	items, err = s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return s.listed(items, "pets database is empty")
}

type UpdateInput struct {
	PetID       int64
	OwnerID     int64
	AnimalName  string  `label:"new_animal_name" validate:"required"`
	Description *string `label:"new_description"`
}

// Update: owner existe -> mascota existe bajo ese owner -> ninguna otra mascota del
// owner tiene ya el nuevo par -> persistir.
func (s *Service) Update(ctx context.Context, in UpdateInput) (p Pet, err error) {
	ctx, span := s.tracer.Start(ctx, "pets.Update", "owner.id", in.OwnerID, "pet.id", in.PetID)
	defer func() { tracing.End(span, err) }()

	in.AnimalName = rules.Trim(in.AnimalName)
	in.Description = rules.TrimOptional(in.Description)

	s.log.Info("attempt to change pet", map[string]any{"owner_id": in.OwnerID, "pet_id": in.PetID})

	if err := rules.ValidateInput(s.log, in); err != nil {
		return Pet{}, err
	}
	if err := s.requireOwner(ctx, in.OwnerID); err != nil {
		return Pet{}, err
	}
	current, err := s.getScoped(ctx, in.OwnerID, in.PetID)
	if err != nil {
		return Pet{}, err
	}

	same, err := s.repo.FindByNameAndDescription(ctx, in.OwnerID, in.AnimalName, in.Description)
	switch {
	case err == nil && same.ID != current.ID:
		return Pet{}, rules.Reject(s.log, rules.Conflict("user already has a pet with this name and description"))
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return Pet{}, err
	}

	current.AnimalName = in.AnimalName
	current.Description = in.Description
	p, err = s.repo.Update(ctx, current)
	if errors.Is(err, storage.ErrDuplicate) {
		return Pet{}, rules.Reject(s.log, rules.Conflict("user already has a pet with this name and description"))
	}
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet changed", map[string]any{"owner_id": p.OwnerID, "pet_id": p.ID})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, petID int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "pets.Delete", "owner.id", ownerID, "pet.id", petID)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to delete pet", map[string]any{"owner_id": ownerID, "pet_id": petID})

	p, err := s.getScoped(ctx, ownerID, petID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p); err != nil {
		return err
	}
	rules.LogDeleted(s.log, p)
	return nil
}

// DeleteAllForOwner borra todas las mascotas del owner en una transacción.
// Sin mascotas es NotFound (independiente de EmptyListNotFound).
func (s *Service) DeleteAllForOwner(ctx context.Context, ownerID int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "pets.DeleteAllForOwner", "owner.id", ownerID)
	defer func() { tracing.End(span, err) }()

	s.log.Info("attempt to delete all pets of user", map[string]any{"owner_id": ownerID})

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		items, err := s.repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if _, err := rules.RequireNonEmpty(s.log, items, ownerHasNoPets(ownerID)); err != nil {
			return err
		}
		return DeleteEach(ctx, s.repo, s.log, items)
	})
}

// DeleteEach borra una por una (hijos antes que el padre en los cascades de users).
func DeleteEach(ctx context.Context, repo Repository, log logger.Logger, items []Pet) error {
	for _, p := range items {
		if err := repo.Delete(ctx, p); err != nil {
			return err
		}
		rules.LogDeleted(log, p)
	}
	return nil
}

func (s *Service) requireOwner(ctx context.Context, ownerID int64) error {
	ok, err := s.owners.OwnerExists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return rules.Reject(s.log, rules.NotFound("user with id %d not found", ownerID))
	}
	return nil
}

func (s *Service) getScoped(ctx context.Context, ownerID, petID int64) (Pet, error) {
	p, err := s.repo.GetScoped(ctx, ownerID, petID)
	return rules.RequireFound(s.log, p, err, scopedNotFound(ownerID, petID))
}

func (s *Service) listed(items []Pet, emptyMsg string) ([]Pet, error) {
	if !s.opts.EmptyListNotFound {
		if items == nil {
			items = []Pet{}
		}
		return items, nil
	}
	return rules.RequireNonEmpty(s.log, items, emptyMsg)
}

func duplicateForOwner(ownerID int64) *rules.Error {
	return rules.Conflict("user with id %d already has a pet with this name and description", ownerID)
}

func scopedNotFound(ownerID, petID int64) string {
	return fmt.Sprintf("pet with owner id = %d and pet id = %d not found", ownerID, petID)
}

func ownerHasNoPets(ownerID int64) string {
	return fmt.Sprintf("user with id = %d has no pets or does not exist", ownerID)
}
