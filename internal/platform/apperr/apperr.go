// Package apperr clasifica fallas internas en las tres clases visibles de la API (400/404/500).
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindConnection
	KindQuery
	KindResult
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindResult:
		return "result"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Status devuelve el código HTTP de la clase.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error es la falla clasificada. Op identifica la operación ("animals.create", "cares.next_id").
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Connection: base de datos inalcanzable o credenciales rechazadas.
func Connection(op string, err error) error {
	return &Error{Kind: KindConnection, Op: op, Msg: "Database connection error", Err: err}
}

// Query: sentencia mal formada o rechazada por el motor.
func Query(op string, err error) error {
	return &Error{Kind: KindQuery, Op: op, Msg: "Query error", Err: err}
}

// Result: falla al leer/decodificar filas.
func Result(op string, err error) error {
	return &Error{Kind: KindResult, Op: op, Msg: "Result error", Err: err}
}

// KindOf devuelve KindInternal para errores no clasificados.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

func Status(err error) int {
	return KindOf(err).Status()
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
