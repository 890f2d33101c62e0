package scalar

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-enginemath/internal/testutil"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{x: 0, want: 0},
		{x: 1, want: 1},
		{x: 0.25, want: 0.5},
		{x: 2, want: math.Sqrt2},
		{x: 4, want: 2},
		{x: 100, want: 10},
		{x: 1e4, want: 100},
	}

	for _, tt := range tests {
		testutil.RequireNearlyEqual(t, "Sqrt", Sqrt(tt.x), tt.want, 1e-12)
	}
}

func TestSqrtSquaresBack(t *testing.T) {
	for _, x := range testutil.DeterministicUniform(7, 0.01, 1000, 256) {
		s := Sqrt(x)
		testutil.RequireRelNearlyEqual(t, "Sqrt(x)^2", s*s, x, 1e-9)
	}
}

func TestSqrtSentinels(t *testing.T) {
	if got := Sqrt(-1); !math.IsInf(got, -1) {
		t.Fatalf("Sqrt(-1) = %v, want -Inf", got)
	}
	if got := Sqrt(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Sqrt(+Inf) = %v, want +Inf", got)
	}
	if got := Sqrt(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("Sqrt(NaN) = %v, want NaN", got)
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name           string
		base, exponent float64
		want           float64
	}{
		{name: "integer", base: 2, exponent: 10, want: 1024},
		{name: "zero exponent", base: 2, exponent: 0, want: 1},
		{name: "zero base negative exponent", base: 0, exponent: -1, want: 0},
		{name: "zero base zero exponent", base: 0, exponent: 0, want: 0},
		{name: "negative exponent", base: 2, exponent: -2, want: 0.25},
		{name: "negative base", base: -2, exponent: 3, want: -8},
		{name: "linear fraction", base: 2, exponent: 0.5, want: 1.5},
		{name: "mixed", base: 4, exponent: 1.5, want: 10},
		{name: "mixed negative", base: 4, exponent: -1.5, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireNearlyEqual(t, "Power", Power(tt.base, tt.exponent), tt.want, 1e-12)
		})
	}
}

func TestPowerInfiniteExponent(t *testing.T) {
	if got := Power(2, math.Inf(1)); !math.IsNaN(got) {
		t.Fatalf("Power(2, +Inf) = %v, want NaN", got)
	}
}

func TestPowExact(t *testing.T) {
	tests := []struct {
		name           string
		base, exponent float64
		want           float64
		eps            float64
	}{
		{name: "integer", base: 2, exponent: 10, want: 1024, eps: 1e-12},
		{name: "large integer", base: 1.5, exponent: 40, want: math.Pow(1.5, 40), eps: 1e-3},
		{name: "reciprocal", base: 2, exponent: -1, want: 0.5, eps: 1e-15},
		{name: "square root", base: 2, exponent: 0.5, want: math.Sqrt2, eps: 1e-6},
		{name: "mixed", base: 4, exponent: 1.5, want: 8, eps: 1e-5},
		{name: "negative base odd", base: -2, exponent: 3, want: -8, eps: 1e-12},
		{name: "zero base", base: 0, exponent: 2, want: 0, eps: 0},
		{name: "large base root", base: 1e6, exponent: 0.5, want: 1000, eps: 1e-3},
		{name: "small base root", base: 1e-4, exponent: 0.25, want: 0.1, eps: 1e-5},
		{name: "large base fraction", base: 1e8, exponent: 1.25, want: 1e10, eps: 1e4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireNearlyEqual(t, "PowExact", PowExact(tt.base, tt.exponent), tt.want, tt.eps)
		})
	}

	if got := PowExact(-2, 0.5); !math.IsNaN(got) {
		t.Fatalf("PowExact(-2, 0.5) = %v, want NaN", got)
	}
	if got := PowExact(0, -1); !math.IsInf(got, 1) {
		t.Fatalf("PowExact(0, -1) = %v, want +Inf", got)
	}
	if got := PowExact(math.NaN(), 2); !math.IsNaN(got) {
		t.Fatalf("PowExact(NaN, 2) = %v, want NaN", got)
	}
}

func TestAbsMaxMin(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Fatal("Abs mismatch")
	}
	if Max(1, 2) != 2 || Max(2, 1) != 2 {
		t.Fatal("Max mismatch")
	}
	if Min(1, 2) != 1 || Min(2, 1) != 1 {
		t.Fatal("Min mismatch")
	}
	if Square(3) != 9 || Cube(-2) != -8 {
		t.Fatal("Square/Cube mismatch")
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		x                  float64
		round, floor, ceil int
	}{
		{x: 2.4, round: 2, floor: 2, ceil: 3},
		{x: 2.5, round: 3, floor: 2, ceil: 3},
		{x: -2.5, round: -3, floor: -3, ceil: -2},
		{x: -1.2, round: -1, floor: -2, ceil: -1},
		{x: 2, round: 2, floor: 2, ceil: 2},
		{x: -2, round: -2, floor: -2, ceil: -2},
	}

	for _, tt := range tests {
		if got := Round(tt.x); got != tt.round {
			t.Fatalf("Round(%v) = %d, want %d", tt.x, got, tt.round)
		}
		if got := Floor(tt.x); got != tt.floor {
			t.Fatalf("Floor(%v) = %d, want %d", tt.x, got, tt.floor)
		}
		if got := Ceil(tt.x); got != tt.ceil {
			t.Fatalf("Ceil(%v) = %d, want %d", tt.x, got, tt.ceil)
		}
	}
}

func TestModulo(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{a: 7, b: 3, want: 1},
		{a: 6, b: 3, want: 0},
		{a: -1, b: 3, want: 2},
		{a: 0, b: 3, want: 0},
		{a: 2.5, b: 3, want: 2.5},
	}

	for _, tt := range tests {
		if got := Modulo(tt.a, tt.b); got != tt.want {
			t.Fatalf("Modulo(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestModuloLargeQuotient(t *testing.T) {
	for _, a := range []float64{1e9, -1e9, 123456789.25} {
		got := Modulo(a, twoPi)
		if got < 0 || got >= twoPi {
			t.Fatalf("Modulo(%v, 2Pi) = %v, outside [0, 2Pi)", a, got)
		}
		testutil.RequireNearlyEqual(t, "Modulo", got, math.Mod(math.Mod(a, twoPi)+twoPi, twoPi), 1e-6)
	}
}

func TestModuloInvalid(t *testing.T) {
	for _, tc := range [][2]float64{{1, 0}, {1, -2}, {math.Inf(1), 1}, {math.NaN(), 1}} {
		if got := Modulo(tc[0], tc[1]); !math.IsNaN(got) {
			t.Fatalf("Modulo(%v, %v) = %v, want NaN", tc[0], tc[1], got)
		}
	}
}

func TestLerp(t *testing.T) {
	if Lerp(2, 4, 0) != 2 {
		t.Fatal("Lerp(t=0) must return a")
	}
	if Lerp(2, 4, 1) != 4 {
		t.Fatal("Lerp(t=1) must return b")
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Fatal("Lerp(t=0.5) mismatch")
	}
	if Lerp(2, 4, 2) != 6 {
		t.Fatal("Lerp must extrapolate outside [0, 1]")
	}
}

func TestFactorial(t *testing.T) {
	if Factorial(0) != 1 || Factorial(1) != 1 || Factorial(5) != 120 {
		t.Fatal("Factorial mismatch")
	}
	if got := Factorial(-1); !math.IsInf(got, -1) {
		t.Fatalf("Factorial(-1) = %v, want -Inf", got)
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(1, 1+5e-7) || !ApproxEqual(1+5e-7, 1) {
		t.Fatal("values within Epsilon must compare equal in both orders")
	}
	if ApproxEqual(1, 1+2e-6) || ApproxEqual(1+2e-6, 1) {
		t.Fatal("values beyond Epsilon must differ in both orders")
	}
	if !ApproxEqualEps(1, 1.05, 0.1) {
		t.Fatal("explicit tolerance not honored")
	}
	if ApproxEqualEps(1, 1.1, 0.1) {
		t.Fatal("tolerance comparison must be strict")
	}
}
