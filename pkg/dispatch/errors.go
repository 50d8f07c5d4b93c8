package dispatch

import (
	"errors"
	"fmt"
)

// Error taxonomy. Callers branch with errors.Is; the HTTP layer maps each
// class to a status code.
var (
	ErrValidation      = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPrecondition    = errors.New("precondition failed")
	ErrExternalService = errors.New("external service failure")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func notFoundErr(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

func conflictErr(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func preconditionErr(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrPrecondition)...)
}

func externalErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrExternalService)
}
