package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/ports/storage"
)

const (
	sqlUserInsert  = `INSERT INTO users (email, hashed_password) VALUES ($1, $2) RETURNING id`
	sqlUserByID    = `SELECT id, email, hashed_password FROM users WHERE id = $1`
	sqlUserByEmail = `SELECT id, email, hashed_password FROM users WHERE email = $1`
	sqlUserPage    = `SELECT id, email, hashed_password FROM users ORDER BY id OFFSET $1 LIMIT $2`
	sqlUserAll     = `SELECT id, email, hashed_password FROM users ORDER BY id`
	sqlUserUpdate  = `UPDATE users SET email = $2, hashed_password = $3 WHERE id = $1`
	sqlUserDelete  = `DELETE FROM users WHERE id = $1`
)

type UsersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) *UsersRepo {
	return &UsersRepo{db: db}
}

var _ users.Repository = (*UsersRepo)(nil)

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.q(ctx).QueryRow(ctx, sqlUserInsert, u.Email, u.PasswordHash).Scan(&u.ID)
	if err != nil {
		return users.User{}, mapErr("insert user", err)
	}
	u.Pets = nil
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.one(ctx, "get user", sqlUserByID, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.one(ctx, "get user by email", sqlUserByEmail, email)
}

func (r *UsersRepo) List(ctx context.Context, page storage.Page) ([]users.User, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return r.many(ctx, "list users", sqlUserPage, page.Skip, page.Limit)
}

func (r *UsersRepo) ListAll(ctx context.Context) ([]users.User, error) {
	return r.many(ctx, "list all users", sqlUserAll)
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	tag, err := r.db.q(ctx).Exec(ctx, sqlUserUpdate, u.ID, u.Email, u.PasswordHash)
	if err := affected("update user", tag, err); err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, u users.User) error {
	tag, err := r.db.q(ctx).Exec(ctx, sqlUserDelete, u.ID)
	return affected("delete user", tag, err)
}

func (r *UsersRepo) one(ctx context.Context, op, sql string, arg any) (users.User, error) {
	var u users.User
	if err := r.db.q(ctx).QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		return users.User{}, mapErr(op, err)
	}
	return u, nil
}

func (r *UsersRepo) many(ctx context.Context, op, sql string, args ...any) ([]users.User, error) {
	rows, err := r.db.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(op, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (users.User, error) {
		var u users.User
		err := row.Scan(&u.ID, &u.Email, &u.PasswordHash)
		return u, err
	})
	if err != nil {
		return nil, mapErr(op, err)
	}
	return out, nil
}
