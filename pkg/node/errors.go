package node

import (
	"errors"

	werrors "github.com/vango-dev/weave/internal/errors"
)

var (
	// ErrConfig is wrapped by the panics raised when a node is built with
	// invalid arguments (bad tag or attribute name, children on a void
	// element, nil child).
	ErrConfig = errors.New("node: invalid configuration")

	// ErrAlreadyMounted is returned when a node is mounted a second time.
	ErrAlreadyMounted = errors.New("node: already mounted")

	// ErrNotMounted is returned when unmounting a tree that is not mounted.
	ErrNotMounted = errors.New("node: not mounted")
)

// configPanic panics with a coded configuration error located at the
// first caller outside this module.
func configPanic(code, format string, args ...any) {
	panic(werrors.New(code).WithDetailf(format, args...).WithCaller(0).Wrap(ErrConfig))
}

// nilNode reports a nil node met at mount time.
func nilNode(format string, args ...any) error {
	return werrors.New("E206").WithDetailf(format, args...).Wrap(ErrConfig)
}

// nilSource reports a nil reactive value passed to a builder.
func nilSource(what string) error {
	return werrors.New("E102").WithDetail(what).WithCaller(0).Wrap(ErrConfig)
}

// guard enforces single mounting.
type guard struct {
	mounted bool
}

func (g *guard) claim(kind string) error {
	if g.mounted {
		return werrors.New("E202").WithDetailf("%s node", kind).Wrap(ErrAlreadyMounted)
	}
	g.mounted = true
	return nil
}
