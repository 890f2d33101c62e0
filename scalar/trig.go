package scalar

import "math"

const twoPi = 2 * Pi

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / Pi)
}

// Sin returns the sine of x. The argument is reduced into [0, 2*Pi) first.
func Sin(x float64) float64 {
	x = Modulo(x, twoPi)
	x2 := x * x
	sum := x
	term := x
	for n := 1; Abs(term) > Epsilon && n <= MaxSeriesTerms; n++ {
		term *= -x2 / float64((2*n)*(2*n+1))
		sum += term
	}
	return sum
}

// Cos returns the cosine of x. The argument is reduced into [0, 2*Pi) first.
func Cos(x float64) float64 {
	x = Modulo(x, twoPi)
	x2 := x * x
	sum := 1.0
	term := 1.0
	for n := 1; Abs(term) > Epsilon && n <= MaxSeriesTerms; n++ {
		term *= -x2 / float64((2*n-1)*(2*n))
		sum += term
	}
	return sum
}

// Tan returns Sin(x)/Cos(x), or +Inf when the cosine is exactly zero.
func Tan(x float64) float64 {
	s := Sin(x)
	c := Cos(x)
	if c == 0 {
		return math.Inf(1)
	}
	return s / c
}

// Asin returns the arcsine of x in radians. x outside [-1, 1] returns -Inf.
//
// Close to ±1 the series converges slowly and the result is only accurate to
// roughly 1e-2.
func Asin(x float64) float64 {
	if x < -1 || x > 1 {
		return math.Inf(-1)
	}

	x2 := x * x
	sum := x
	term := x
	for n := 1; Abs(term) > Epsilon && n <= MaxSeriesTerms; n++ {
		k := float64(n)
		term *= (2*k - 1) * (2*k - 1) * x2 / ((2 * k) * (2*k + 1))
		sum += term
	}
	return sum
}

// Acos returns Pi/2 - Asin(x). x outside [-1, 1] returns +Inf.
func Acos(x float64) float64 {
	return Pi/2 - Asin(x)
}

// Atan returns the arctangent of x in radians.
//
// For |x| <= 1 it sums the Taylor series. Beyond that the series diverges, so
// the identity atan(x) = ±Pi/2 - atan(1/x) folds the argument back.
func Atan(x float64) float64 {
	if x > 1 {
		return Pi/2 - Atan(1/x)
	}
	if x < -1 {
		return -Pi/2 - Atan(1/x)
	}

	x2 := x * x
	sum := x
	term := x
	for n := 1; Abs(term) > Epsilon && n <= MaxSeriesTerms; n++ {
		k := float64(n)
		term *= -x2 * (2*k - 1) / (2*k + 1)
		sum += term
	}
	return sum
}
