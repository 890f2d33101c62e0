package accuracy

import (
	"errors"
	"testing"
)

func TestFunctionsRegistry(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Functions() {
		if seen[f.Name] {
			t.Fatalf("duplicate function %q", f.Name)
		}
		seen[f.Name] = true

		if f.Kernel == nil || f.Reference == nil {
			t.Fatalf("%s: missing kernel or reference", f.Name)
		}
		if !(f.Hi > f.Lo) {
			t.Fatalf("%s: empty interval [%v, %v]", f.Name, f.Lo, f.Hi)
		}
	}

	for _, name := range []string{"sqrt", "exp", "ln", "log10", "sin", "cos", "tan", "asin", "acos", "atan", "sinh", "cosh", "tanh"} {
		if !seen[name] {
			t.Fatalf("function %q missing from registry", name)
		}
	}
}

func TestLookup(t *testing.T) {
	f, err := Lookup("sin")
	if err != nil || f.Name != "sin" {
		t.Fatalf("Lookup(sin) = %v, %v", f.Name, err)
	}
	if _, err := Lookup("gamma"); !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("err = %v, want ErrUnknownFunction", err)
	}
}

func TestEvaluateKernelAccuracy(t *testing.T) {
	for _, f := range Functions() {
		t.Run(f.Name, func(t *testing.T) {
			row, err := Evaluate(f, WithSamples(401))
			if err != nil {
				t.Fatalf("Evaluate error: %v", err)
			}
			if row.Kernel.NonFinite != 0 {
				t.Fatalf("%d non-finite kernel values", row.Kernel.NonFinite)
			}
			if row.Kernel.MaxAbs > 1e-3 {
				t.Fatalf("kernel MaxAbs = %v at %v", row.Kernel.MaxAbs, row.Kernel.MaxAbsAt)
			}
			if row.HasFast != (f.Fast != nil) {
				t.Fatalf("HasFast = %v, want %v", row.HasFast, f.Fast != nil)
			}
			if row.HasFast && row.Fast.Samples != 401 {
				t.Fatalf("fast Samples = %d, want 401", row.Fast.Samples)
			}
		})
	}
}
