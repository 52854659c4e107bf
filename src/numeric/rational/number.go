package rational

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// formatNumber renders f the way the field text is expected to look: plain
// digits for ordinary magnitudes, exponent form for very large or very small
// ones, and no negative zero.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return textNaN
	case math.IsInf(f, 1):
		return textInfinity
	case math.IsInf(f, -1):
		return textNegInfinity
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs < exponentUpper && abs >= exponentLower {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// FormatFloat pads the exponent to two digits: 1.5e-07.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// parseNumber converts one segment. Surrounding whitespace is ignored and a
// blank segment is zero. Accepted literals are signed decimals with optional
// fraction and exponent, the exact spellings Infinity/+Infinity/-Infinity,
// and unsigned 0x, 0o and 0b integers. Out-of-range decimals saturate to ±Inf
// or 0 instead of failing.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, nil
	case textInfinity, "+" + textInfinity:
		return math.Inf(1), nil
	case textNegInfinity:
		return math.Inf(-1), nil
	}

	if len(s) > 2 && s[0] == '0' {
		if base := radixBase(s[1]); base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	if !isDecimalLiteral(s) {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

func radixBase(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// parseRadix reads unsigned digits of any length, rounding to the nearest
// float64.
func parseRadix(digits string, base int) (float64, error) {
	if digits[0] == '+' || digits[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, nil
}

// isDecimalLiteral reports whether s is [+-] digits [. digits] [e [+-] digits]
// with at least one mantissa digit. It keeps ParseFloat from accepting inf,
// nan, hex floats and underscores.
func isDecimalLiteral(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func numberOrNaN(s string) float64 {
	f, err := parseNumber(s)
	if err != nil {
		return math.NaN()
	}
	return f
}
