package dom

import (
	"errors"

	werrors "github.com/vango-dev/weave/internal/errors"
)

// ErrWrongGoroutine is the panic value (wrapped) raised when a strict
// document is mutated from a goroutine other than its owner.
var ErrWrongGoroutine = errors.New("dom: document mutated from foreign goroutine")

// ErrNotFound is returned when a path or query matches no node.
var ErrNotFound = errors.New("dom: node not found")

func notFound(format string, args ...any) error {
	return werrors.New("E242").WithDetailf(format, args...).Wrap(ErrNotFound)
}
