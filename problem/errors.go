// SPDX-License-Identifier: MIT
// Package: problem
//
// errors.go: sentinel errors for the problem package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w (see problemErrorf).
//   • Generation never returns a partially built Problem alongside an error.

package problem

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a precondition violation: non-positive
// dimensions, nVals < nKeys, a nil Source, a key/value outside its range, or
// a feature vector of the wrong width.
var ErrInvalidArgument = errors.New("problem: invalid argument")

// ErrBadDraw reports a Source that answered Intn(n) outside [0, n).
var ErrBadDraw = errors.New("problem: source draw out of range")

// Method tags used as error prefixes.
const (
	methodNewFactory = "NewFactory"
	methodEncode     = "Encode"
	methodGenerate   = "Generate"
	methodDecode     = "Decode"
	methodFromParts  = "FromParts"
	methodTake       = "Take"
)

// problemErrorf prefixes a formatted message with the method tag and wraps
// err, yielding "<method>: <message>: <err>".
func problemErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
