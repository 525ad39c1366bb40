package textfmt

import "errors"

// Sentinel errors for the file-level failure classes. Wrap with
// fmt.Errorf("%w: ...", ErrX, ...) for positional context; branch with
// errors.Is.
var (
	// ErrUnreadable covers a source that cannot be read at all (missing
	// file, permission failure, I/O error mid-read).
	ErrUnreadable = errors.New("textfmt: input unreadable")

	// ErrTooLarge is returned when the input exceeds MaxInputBytes.
	ErrTooLarge = errors.New("textfmt: input exceeds 500kB limit")

	// ErrEncoding is returned when the input is neither valid UTF-8 nor
	// decodable as CP1250.
	ErrEncoding = errors.New("textfmt: unrecognised encoding")

	// ErrSyntax covers malformed tokens, an unexpected record shape, or
	// early EOF inside a bracketed record.
	ErrSyntax = errors.New("textfmt: malformed problem description")

	// ErrOutputAccess is returned when a generated-problem destination is
	// missing or unwritable.
	ErrOutputAccess = errors.New("textfmt: output destination unwritable")
)
