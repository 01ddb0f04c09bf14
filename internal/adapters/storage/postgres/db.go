package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/storage"
)

// SQLSTATE de unique_violation
const codeUniqueViolation = "23505"

type PoolConfig struct {
	MaxConns int32
	MinConns int32
}

// Open abre un pool pgx y verifica la conexión.
func Open(ctx context.Context, dsn string, cfg PoolConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	// defaults razonables (ajustables por config)
	pcfg.MaxConns = 10
	pcfg.MinConns = 2
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Querier es lo común entre pool y transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool lo satisfacen *pgxpool.Pool y pgxmock.PgxPoolIface.
type Pool interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DB reparte la conexión a los repos: la transacción del ctx si hay una, si no el pool.
type DB struct {
	pool Pool
	log  logger.Logger
}

func NewDB(pool Pool, log logger.Logger) *DB {
	if log == nil {
		log = logger.NewNop()
	}
	return &DB{pool: pool, log: log}
}

var _ storage.Transactor = (*DB)(nil)

type txKey struct{}

// WithinTx fija una conexión para toda fn; siempre termina en commit o rollback.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	db.log.Debug("db session opened", nil)

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
		db.log.Debug("db session closed", map[string]any{"committed": committed})
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

func (db *DB) q(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.pool
}

// mapErr traduce errores del driver a los sentinels de storage.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return storage.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func affected(op string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
