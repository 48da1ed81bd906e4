package bigint

import "github.com/pkg/errors"

// Classification sentinels for the package's arithmetic and parsing
// failures. Specific errors wrap one of these with context; callers
// match the class with errors.Is. Errors from a caller's reader, such
// as io.EOF from Scanner.Next or a failed read in Random, carry no
// sentinel.
var (
	// ErrDomain marks a mathematically impossible request, such as the
	// logarithm of a non-positive value or a modular inverse that does
	// not exist.
	ErrDomain = errors.New("domain error")

	// ErrOverflow marks division by zero.
	ErrOverflow = errors.New("overflow error")

	// ErrRange marks an out-of-range argument at an API boundary.
	ErrRange = errors.New("range error")

	// ErrParse marks malformed textual input read by a Scanner.
	ErrParse = errors.New("parse error")
)
