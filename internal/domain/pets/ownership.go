package pets

import "context"

// OwnerLookup confirma que un owner existe.
// Se usa para evitar ciclos de imports entre módulos (pets <-> users).
type OwnerLookup interface {
	OwnerExists(ctx context.Context, ownerID int64) (bool, error)
}
