package rules

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind distingue los rechazos de negocio. Todos son terminales (no se reintenta).
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnprocessable:
		return "unprocessable_entity"
	default:
		return "unknown"
	}
}

// Status es el código HTTP de cada Kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusBadRequest
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrUnprocessable = errors.New("unprocessable entity")
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is permite errors.Is(err, rules.ErrNotFound) etc.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrUnprocessable:
		return e.Kind == KindUnprocessable
	}
	return false
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unprocessable(format string, args ...any) *Error {
	return &Error{Kind: KindUnprocessable, Message: fmt.Sprintf(format, args...)}
}

// KindOf devuelve el Kind si err es (o envuelve) un *Error.
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// HTTPStatus: NotFound=404, Conflict=400, Unprocessable=422, resto=500.
func HTTPStatus(err error) int {
	if k, ok := KindOf(err); ok {
		return k.Status()
	}
	return http.StatusInternalServerError
}
