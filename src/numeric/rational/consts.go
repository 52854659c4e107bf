package rational

const separator = "/"

const (
	// Magnitudes outside [exponentLower, exponentUpper) print in exponent
	// form, e.g. 1e+21 and 1.5e-7.
	exponentUpper = 1e21
	exponentLower = 1e-6
)

const (
	textNaN         = "NaN"
	textInfinity    = "Infinity"
	textNegInfinity = "-Infinity"
)
