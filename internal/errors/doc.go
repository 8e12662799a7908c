// Package errors provides structured, coded error values for weave.
//
// Every failure the engine reports maps to a registered code:
//   - range: list index outside the valid range (E101)
//   - state: double mount, unmount of an unmounted tree, foreign goroutine (E2xx)
//   - config: build-time misuse such as an invalid tag or children on a void element
//   - cli: configuration, script and export failures in the weave command
//
// Public packages wrap their sentinel errors in an *Error so callers can
// use errors.Is against the sentinel and still print the coded message:
//
//	err := errors.New("E101").
//	    WithDetailf("index %d, length %d", 5, 2).
//	    Wrap(reactive.ErrRange)
//
//	fmt.Println(err.Format())
package errors
