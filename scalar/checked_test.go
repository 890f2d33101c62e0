package scalar

import (
	"errors"
	"testing"
)

func TestCheckedDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		call func() (float64, error)
	}{
		{name: "sqrt", call: func() (float64, error) { return SqrtChecked(-1) }},
		{name: "ln zero", call: func() (float64, error) { return LnChecked(0) }},
		{name: "ln negative", call: func() (float64, error) { return LnChecked(-2) }},
		{name: "asin", call: func() (float64, error) { return AsinChecked(1.5) }},
		{name: "acos", call: func() (float64, error) { return AcosChecked(-1.5) }},
		{name: "factorial", call: func() (float64, error) { return FactorialChecked(-3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			if !errors.Is(err, ErrDomain) {
				t.Fatalf("err = %v, want ErrDomain", err)
			}
		})
	}
}

func TestCheckedMatchesDefault(t *testing.T) {
	if v, err := SqrtChecked(9); err != nil || v != Sqrt(9) {
		t.Fatalf("SqrtChecked(9) = %v, %v", v, err)
	}
	if v, err := LnChecked(2); err != nil || v != Ln(2) {
		t.Fatalf("LnChecked(2) = %v, %v", v, err)
	}
	if v, err := AsinChecked(0.3); err != nil || v != Asin(0.3) {
		t.Fatalf("AsinChecked(0.3) = %v, %v", v, err)
	}
	if v, err := AcosChecked(0.3); err != nil || v != Acos(0.3) {
		t.Fatalf("AcosChecked(0.3) = %v, %v", v, err)
	}
	if v, err := TanChecked(Pi / 4); err != nil || v != Tan(Pi/4) {
		t.Fatalf("TanChecked(Pi/4) = %v, %v", v, err)
	}
	if v, err := FactorialChecked(4); err != nil || v != 24 {
		t.Fatalf("FactorialChecked(4) = %v, %v", v, err)
	}
}
