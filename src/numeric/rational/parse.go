package rational

import (
	"math"
	"strings"
)

// Parse reads "numerator/denominator". The result is not normalized.
//
// Segments follow the literal rules of parseNumber, so "1.5/2", " 3 / 4 " and
// "0x10/1" are valid and a blank segment reads as zero: "/2" is 0/2 while "2/"
// fails with ErrZeroDenominator. Segments that are not numbers, or that spell
// NaN, are rejected with ErrNonNumeric.
func Parse(s string) (*Rational, error) {
	parts := strings.Split(s, separator)
	if len(parts) != 2 {
		return nil, newParseError(s, ErrMalformed)
	}

	var fields [2]float64
	for i, part := range parts {
		f, err := parseNumber(part)
		if err != nil || math.IsNaN(f) {
			return nil, &ParseError{Input: s, Segment: part, Err: ErrNonNumeric}
		}
		fields[i] = f
	}

	r, err := New(fields[0], fields[1])
	if err != nil {
		return nil, newParseError(s, err)
	}
	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}
