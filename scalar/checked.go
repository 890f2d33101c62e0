package scalar

import (
	"errors"
	"fmt"
)

// ErrDomain is wrapped by the *Checked functions when the argument lies
// outside the function's domain.
var ErrDomain = errors.New("scalar: argument outside function domain")

// SqrtChecked is Sqrt with an error for x < 0.
func SqrtChecked(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("scalar: sqrt(%g): %w", x, ErrDomain)
	}
	return Sqrt(x), nil
}

// LnChecked is Ln with an error for x <= 0.
func LnChecked(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("scalar: ln(%g): %w", x, ErrDomain)
	}
	return Ln(x), nil
}

// AsinChecked is Asin with an error outside [-1, 1].
func AsinChecked(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("scalar: asin(%g): %w", x, ErrDomain)
	}
	return Asin(x), nil
}

// AcosChecked is Acos with an error outside [-1, 1].
func AcosChecked(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("scalar: acos(%g): %w", x, ErrDomain)
	}
	return Acos(x), nil
}

// TanChecked is Tan with an error where the cosine is exactly zero.
func TanChecked(x float64) (float64, error) {
	if Cos(x) == 0 {
		return 0, fmt.Errorf("scalar: tan(%g): %w", x, ErrDomain)
	}
	return Tan(x), nil
}

// FactorialChecked is Factorial with an error for n < 0.
func FactorialChecked(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("scalar: factorial(%d): %w", n, ErrDomain)
	}
	return Factorial(n), nil
}
