package reactive

import (
	"errors"

	werrors "github.com/vango-dev/weave/internal/errors"
)

// ErrRange is returned when a List mutation receives an index outside the
// valid range for that operation.
var ErrRange = errors.New("reactive: index out of range")

func rangeError(op string, index, length int) error {
	return werrors.New("E101").
		WithDetailf("%s at index %d, length %d", op, index, length).
		Wrap(ErrRange)
}
