package rules

import (
	"errors"
	"strings"

	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/storage"
)

// RequireFound deja pasar rec si el lookup lo encontró.
// storage.ErrNotFound se traduce a NotFound(msg); cualquier otro error sube tal cual.
func RequireFound[T any](log logger.Logger, rec T, err error, msg string) (T, error) {
	var zero T
	if errors.Is(err, storage.ErrNotFound) {
		return zero, reject(log, NotFound("%s", msg))
	}
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// RequireAbsent falla con Conflict(msg) si el lookup encontró un registro.
func RequireAbsent(log logger.Logger, err error, msg string) error {
	if err == nil {
		return reject(log, Conflict("%s", msg))
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

// RequireNonEmpty falla con NotFound(msg) si la colección está vacía.
func RequireNonEmpty[T any](log logger.Logger, items []T, msg string) ([]T, error) {
	if len(items) == 0 {
		return nil, reject(log, NotFound("%s", msg))
	}
	return items, nil
}

// WarnIfEmpty es la variante que solo loguea (limpiezas masivas idempotentes).
func WarnIfEmpty[T any](log logger.Logger, items []T, msg string) bool {
	if len(items) == 0 {
		log.Warn(msg, map[string]any{"status": KindNotFound.Status()})
		return true
	}
	return false
}

// Reject loguea el rechazo como "<status> <detalle>" y lo devuelve.
func Reject(log logger.Logger, e *Error) error {
	return reject(log, e)
}

func reject(log logger.Logger, e *Error) error {
	log.Warn(e.Error(), map[string]any{
		"status": e.Kind.Status(),
		"kind":   e.Kind.String(),
	})
	return e
}

// Trim normaliza strings en el borde del request.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimOptional recorta y convierte "" en nil.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// SameOptional compara dos campos nullable.
func SameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
