package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("storage: not found")
	ErrDuplicate = errors.New("storage: duplicate")
)

const (
	DefaultLimit = 100
)

var ErrInvalidPage = errors.New("storage: invalid page")

// Page es la paginación skip/limit sin orden garantizado más allá del natural del store.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) Validate() error {
	if p.Skip < 0 || p.Limit <= 0 {
		return ErrInvalidPage
	}
	return nil
}

// Transactor agrupa varias llamadas a repos en una sola unidad atómica.
// Los repos toman la transacción del ctx que recibe fn.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
