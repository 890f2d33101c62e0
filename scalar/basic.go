package scalar

import "math"

// Sqrt returns the square root of x using 20 Newton-Raphson iterations
// starting from x/2. Negative x returns -Inf.
//
// Zero, +Inf and NaN are returned unchanged; the iteration would otherwise
// evaluate 0/0 or Inf/Inf.
func Sqrt(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 1) {
		return x
	}

	estimate := x / 2
	for range sqrtIterations {
		estimate = (estimate + x/estimate) / 2
	}
	return estimate
}

// Square returns x*x.
func Square(x float64) float64 { return x * x }

// Cube returns x*x*x.
func Cube(x float64) float64 { return x * x * x }

// Power returns an approximation of base^exponent.
//
// The integer part of the exponent is applied by repeated multiplication and
// a negative exponent by taking the reciprocal. The fractional part f is NOT
// a true fractional power: it contributes the linear factor 1 + f*(base-1),
// which is only close for small f and base near 1. Callers that need a correct
// power should use PowExact.
//
// base == 0 with exponent <= 0 returns 0; exponent == 0 returns 1.
func Power(base, exponent float64) float64 {
	if base == 0 && exponent <= 0 {
		return 0
	}
	if exponent == 0 {
		return 1
	}
	// The multiplication loop never ends for an infinite exponent.
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		return math.NaN()
	}

	negative := exponent < 0
	if negative {
		exponent = -exponent
	}

	result := 1.0
	for exponent >= 1 {
		result *= base
		exponent--
	}

	if exponent > 0 {
		result *= 1 + exponent*(base-1)
	}

	if negative {
		return 1 / result
	}
	return result
}

// PowExact returns base^exponent with a real fractional part.
//
// The integer part is computed by binary exponentiation and the fractional
// part as Exp(f*Ln(base)). A negative base with a fractional exponent returns
// NaN; 0 raised to a negative exponent returns +Inf.
func PowExact(base, exponent float64) float64 {
	if math.IsNaN(base) || math.IsNaN(exponent) {
		return math.NaN()
	}
	if exponent == 0 {
		return 1
	}
	if base == 0 {
		if exponent > 0 {
			return 0
		}
		return math.Inf(1)
	}

	negative := exponent < 0
	if negative {
		exponent = -exponent
	}

	whole := math.Trunc(exponent)
	frac := exponent - whole
	if frac > 0 && base < 0 {
		return math.NaN()
	}

	// Every float above 2^53 is even, so clamping keeps the parity.
	n := uint64(min(whole, 1<<62))
	result := 1.0
	b := base
	for n > 0 {
		if n&1 == 1 {
			result *= b
		}
		b *= b
		n >>= 1
	}

	if frac > 0 {
		result *= Exp(frac * Ln(base))
	}

	if negative {
		return 1 / result
	}
	return result
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Round rounds x to the nearest integer, halves away from zero.
func Round(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return int(x - 0.5)
}

// Floor returns the largest integer not greater than x.
func Floor(x float64) int {
	i := int(x)
	if x < 0 && x != float64(i) {
		return i - 1
	}
	return i
}

// Ceil returns the smallest integer not less than x.
func Ceil(x float64) int {
	i := int(x)
	if x > 0 && x != float64(i) {
		return i + 1
	}
	return i
}

// Modulo reduces a into [0, b) for b > 0.
//
// Small quotients are reduced by repeated subtraction or addition of b. Once
// |a/b| exceeds 2^20 the bulk of the quotient is removed in one step first.
// Non-finite a, NaN b or b <= 0 return NaN.
func Modulo(a, b float64) float64 {
	if !(b > 0) || math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN()
	}

	if q := a / b; q > moduloLoopLimit || q < -moduloLoopLimit {
		a -= b * math.Trunc(q)
	}

	for a >= b {
		a -= b
	}
	for a < 0 {
		a += b
	}
	return a
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Factorial returns n! as a float64. Negative n returns -Inf.
func Factorial(n int) float64 {
	if n < 0 {
		return math.Inf(-1)
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// ApproxEqual reports whether |a-b| < Epsilon.
func ApproxEqual(a, b float64) bool {
	return ApproxEqualEps(a, b, Epsilon)
}

// ApproxEqualEps reports whether |a-b| < eps.
func ApproxEqualEps(a, b, eps float64) bool {
	return Abs(a-b) < eps
}
