package scalar

import "math"

// Exp returns e^x from its Taylor series.
//
// Large negative x loses precision to cancellation between alternating terms;
// the series is evaluated as is.
func Exp(x float64) float64 {
	result := 1.0
	term := 1.0
	for n := 1; Abs(term) > Epsilon && n <= MaxSeriesTerms; n++ {
		term *= x / float64(n)
		result += term
	}
	return result
}

// Ln returns the natural logarithm of x. x <= 0 returns -Inf.
//
// x is first scaled by powers of Euler into [1/e, e], contributing one unit
// per step. The remainder is summed as 2 * Σ y^(2n-1)/(2n-1) with
// y = (x-1)/(x+1), which keeps |y| below 0.47.
func Ln(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	if math.IsInf(x, 1) || math.IsNaN(x) {
		return x
	}

	k := 0.0
	for x > Euler {
		x /= Euler
		k++
	}
	for x < 1/Euler {
		x *= Euler
		k--
	}

	y := (x - 1) / (x + 1)
	y2 := y * y
	sum := 0.0
	term := y
	for n := 1; Abs(term) > Epsilon && n <= MaxSeriesTerms; n++ {
		sum += term / float64(2*n-1)
		term *= y2
	}
	return k + 2*sum
}

// Log10 returns the base-10 logarithm of x.
func Log10(x float64) float64 {
	return Ln(x) / ln10
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) float64 {
	return (Exp(x) - Exp(-x)) / 2
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) float64 {
	return (Exp(x) + Exp(-x)) / 2
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	e2x := Exp(2 * x)
	return (e2x - 1) / (e2x + 1)
}
