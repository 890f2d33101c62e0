package scalar

// Fundamental constants.
const (
	Pi    = 3.14159265358979323846
	Euler = 2.71828182845904523536

	// Epsilon is both the series truncation threshold and the default
	// tolerance of ApproxEqual.
	Epsilon = 1e-6
)

// MaxSeriesTerms bounds every series loop in this package. It sits well above
// the term count the Epsilon test needs inside each series' radius of
// convergence, so it only engages at the edge of convergence (Asin and Atan
// near ±1). Ln reduces its argument first and never reaches it.
const MaxSeriesTerms = 1 << 14

const (
	sqrtIterations = 20

	// ln10 is the truncated constant used by Log10.
	ln10 = 2.302585093

	// moduloLoopLimit is the largest quotient Modulo still reduces by repeated
	// subtraction.
	moduloLoopLimit = 1 << 20
)
