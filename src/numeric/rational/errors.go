package rational

import (
	"errors"
	"strconv"
)

var (
	// ErrZeroDenominator is returned by New when the denominator is zero.
	ErrZeroDenominator = errors.New("denominator cannot be zero")

	// ErrMalformed means the text did not split into exactly two segments
	// around "/".
	ErrMalformed = errors.New("malformed rational string, want a/b")

	// ErrNonNumeric means a segment is not a number.
	ErrNonNumeric = errors.New("non-numeric component")
)

// ParseError records a failed Parse. Err is one of ErrMalformed,
// ErrNonNumeric or ErrZeroDenominator.
type ParseError struct {
	Input   string
	Segment string // offending segment, empty unless Err is ErrNonNumeric
	Err     error
}

func (e *ParseError) Error() string {
	msg := "rational: parsing " + strconv.Quote(e.Input) + ": "
	if errors.Is(e.Err, ErrNonNumeric) {
		msg += "segment " + strconv.Quote(e.Segment) + ": "
	}
	return msg + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}
