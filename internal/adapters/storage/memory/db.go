package memory

import (
	"context"
	"slices"
	"sync"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/ports/storage"
)

// DB es el store in-memory compartido por los repos de users y pets.
// Los ids son secuencias estrictamente crecientes por tabla (no se reusan).
type DB struct {
	mu    sync.RWMutex
	users map[int64]users.User
	pets  map[int64]pets.Pet

	nextUserID int64
	nextPetID  int64

	// serializa transacciones entre sí
	txMu sync.Mutex
}

func NewDB() *DB {
	return &DB{
		users: make(map[int64]users.User),
		pets:  make(map[int64]pets.Pet),
	}
}

var _ storage.Transactor = (*DB)(nil)

type txKey struct{}

// txState guarda los deshacer de las escrituras hechas dentro de una transacción.
type txState struct {
	db   *DB
	undo []func()
}

// WithinTx serializa transacciones entre sí. Si fn falla se deshacen solo las
// escrituras propias de la transacción, en orden inverso; las de otros requests
// quedan intactas.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// transacción anidada: corre dentro de la externa
	if tx, ok := ctx.Value(txKey{}).(*txState); ok && tx.db == db {
		return fn(ctx)
	}

	db.txMu.Lock()
	defer db.txMu.Unlock()

	tx := &txState{db: db}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		db.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		db.mu.Unlock()
		return err
	}
	return nil
}

// onRollbackLocked registra undo si ctx está dentro de una transacción de db.
// Se llama con db.mu tomado; undo corre también con db.mu tomado.
func (db *DB) onRollbackLocked(ctx context.Context, undo func()) {
	if tx, ok := ctx.Value(txKey{}).(*txState); ok && tx.db == db {
		tx.undo = append(tx.undo, undo)
	}
}

// paginate aplica skip/limit sobre el orden natural (id asc).
func paginate[T any](ids []int64, byID map[int64]T, page *storage.Page) []T {
	slices.Sort(ids)
	if page != nil {
		if page.Skip >= len(ids) {
			ids = nil
		} else {
			ids = ids[page.Skip:]
		}
		if len(ids) > page.Limit {
			ids = ids[:page.Limit]
		}
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}
