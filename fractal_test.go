package fractal

import (
	"errors"
	"slices"
	"testing"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"mandelbrot", "julia", "burning-ship"} {
		f, err := Lookup(name, "")
		if err != nil {
			t.Errorf("Lookup(%q) = %v, want nil", name, err)
			continue
		}
		if f.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q, want %q", name, f.Name(), name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nonesuch", ""); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Lookup(nonesuch) = %v, want ErrUnknownVariant", err)
	}
}

func TestVariantsSorted(t *testing.T) {
	names := Variants()
	if !slices.IsSorted(names) {
		t.Errorf("Variants() = %v, want sorted", names)
	}
	for _, want := range []string{"burning-ship", "julia", "mandelbrot"} {
		if !slices.Contains(names, want) {
			t.Errorf("Variants() = %v, missing %q", names, want)
		}
	}
}

func TestRegisterReplace(t *testing.T) {
	Register("custom-test", func(string) (Fractal, error) { return Mandelbrot{}, nil })
	Register("custom-test", func(string) (Fractal, error) { return BurningShip{}, nil })

	f, err := Lookup("custom-test", "")
	if err != nil {
		t.Fatalf("Lookup(custom-test) = %v, want nil", err)
	}
	if _, ok := f.(BurningShip); !ok {
		t.Errorf("Lookup(custom-test) = %T, want the replacement registration", f)
	}
}

func TestEncodeArgs(t *testing.T) {
	if got := encodeArgs(Mandelbrot{}); got != "" {
		t.Errorf("encodeArgs(Mandelbrot) = %q, want empty", got)
	}
	if got := encodeArgs(Julia{C: complex(0.25, -0.5)}); got == "" {
		t.Error("encodeArgs(Julia) = empty, want encoded constant")
	}
}
