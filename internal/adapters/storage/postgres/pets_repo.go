package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/ports/storage"
)

const (
	sqlPetInsert  = `INSERT INTO pets (animal_name, description, owner_id) VALUES ($1, $2, $3) RETURNING id`
	sqlPetScoped  = `SELECT id, animal_name, description, owner_id FROM pets WHERE id = $1 AND owner_id = $2`
	sqlPetByPair  = `SELECT id, animal_name, description, owner_id FROM pets WHERE owner_id = $1 AND animal_name = $2 AND COALESCE(description, '') = COALESCE($3::text, '') ORDER BY id LIMIT 1`
	sqlPetByOwner = `SELECT id, animal_name, description, owner_id FROM pets WHERE owner_id = $1 ORDER BY id`
	sqlPetPage    = `SELECT id, animal_name, description, owner_id FROM pets ORDER BY id OFFSET $1 LIMIT $2`
	sqlPetAll     = `SELECT id, animal_name, description, owner_id FROM pets ORDER BY id`
	sqlPetUpdate  = `UPDATE pets SET animal_name = $2, description = $3 WHERE id = $1`
	sqlPetDelete  = `DELETE FROM pets WHERE id = $1`
)

type PetsRepo struct {
	db *DB
}

func NewPetsRepo(db *DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.q(ctx).QueryRow(ctx, sqlPetInsert, p.AnimalName, p.Description, p.OwnerID).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, mapErr("insert pet", err)
	}
	return p, nil
}

func (r *PetsRepo) GetScoped(ctx context.Context, ownerID, petID int64) (pets.Pet, error) {
	return r.one(ctx, "get pet", sqlPetScoped, petID, ownerID)
}

func (r *PetsRepo) FindByNameAndDescription(ctx context.Context, ownerID int64, animalName string, description *string) (pets.Pet, error) {
	return r.one(ctx, "find pet by name and description", sqlPetByPair, ownerID, animalName, description)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.many(ctx, "list pets by owner", sqlPetByOwner, ownerID)
}

func (r *PetsRepo) List(ctx context.Context, page storage.Page) ([]pets.Pet, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return r.many(ctx, "list pets", sqlPetPage, page.Skip, page.Limit)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return r.many(ctx, "list all pets", sqlPetAll)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	tag, err := r.db.q(ctx).Exec(ctx, sqlPetUpdate, p.ID, p.AnimalName, p.Description)
	if err := affected("update pet", tag, err); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, p pets.Pet) error {
	tag, err := r.db.q(ctx).Exec(ctx, sqlPetDelete, p.ID)
	return affected("delete pet", tag, err)
}

func (r *PetsRepo) one(ctx context.Context, op, sql string, args ...any) (pets.Pet, error) {
	var p pets.Pet
	if err := r.db.q(ctx).QueryRow(ctx, sql, args...).Scan(&p.ID, &p.AnimalName, &p.Description, &p.OwnerID); err != nil {
		return pets.Pet{}, mapErr(op, err)
	}
	return p, nil
}

func (r *PetsRepo) many(ctx context.Context, op, sql string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(op, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (pets.Pet, error) {
		var p pets.Pet
		err := row.Scan(&p.ID, &p.AnimalName, &p.Description, &p.OwnerID)
		return p, err
	})
	if err != nil {
		return nil, mapErr(op, err)
	}
	return out, nil
}
