package rational

import "encoding"

var (
	_ encoding.TextMarshaler   = Rational{}
	_ encoding.TextUnmarshaler = (*Rational)(nil)
)

// MarshalText encodes r as "numerator/denominator". JSON and YAML encoders
// pick this up for values and pointers alike, so r is written as a string.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses text with Parse and overwrites r.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = *v
	return nil
}
