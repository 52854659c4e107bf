// Package rational provides a fraction value type that keeps the numerator and
// denominator exactly as given until it is explicitly normalized.
package rational

import (
	"math"
	"strings"
)

// Rational is a numerator/denominator pair. Fields are not reduced
// automatically; call Normalize for lowest terms.
//
// The fields are float64 so that any numeric literal accepted by Parse can be
// held, including fractional and not-a-number values. Assigning the fields
// directly skips the zero denominator check done by New.
type Rational struct {
	Numerator   float64
	Denominator float64
}

// New returns numerator/denominator as given. It fails with
// ErrZeroDenominator when denominator is zero.
func New(numerator float64, denominator float64) (*Rational, error) {
	if denominator == 0 {
		return nil, ErrZeroDenominator
	}
	return &Rational{Numerator: numerator, Denominator: denominator}, nil
}

// FromDigits joins each slice into one numeric literal and builds a Rational
// from the pair. Segments that do not convert become NaN; unlike Parse, no
// error is reported for them.
func FromDigits(numerator []string, denominator []string) (*Rational, error) {
	return New(
		numberOrNaN(strings.Join(numerator, "")),
		numberOrNaN(strings.Join(denominator, "")),
	)
}

// Normalize reduces r to lowest terms and moves the sign onto the numerator.
// It mutates r and returns it.
//
// A zero numerator collapses to 0/1. When the gcd is zero (0/0) or not finite
// (NaN or infinite fields) no reduction happens and only the sign is moved.
func (r *Rational) Normalize() *Rational {
	g := gcd(math.Abs(r.Numerator), math.Abs(r.Denominator))
	if g != 0 && !math.IsNaN(g) && !math.IsInf(g, 0) {
		r.Numerator /= g
		r.Denominator /= g
	}

	if r.Denominator < 0 {
		r.Numerator = -r.Numerator
		r.Denominator = -r.Denominator
	}

	// 0/-1 flips to -0/1.
	if r.Numerator == 0 {
		r.Numerator = 0
	}
	return r
}

func (r *Rational) IsWhole() bool {
	return r.Denominator == 1
}

func (r *Rational) IsDecimal() bool {
	return r.Denominator != 1
}

// Equal reports whether both fields are identical as stored. 1/2 and 2/4 are
// not equal unless both have been normalized.
func (r *Rational) Equal(other *Rational) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Numerator == other.Numerator &&
		r.Denominator == other.Denominator
}

// String returns "numerator/denominator".
func (r *Rational) String() string {
	return formatNumber(r.Numerator) + separator + formatNumber(r.Denominator)
}

// gcd is the Euclidean algorithm over non-negative inputs. It returns NaN
// rather than looping when either input is not finite.
func gcd(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return math.NaN()
	}
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
