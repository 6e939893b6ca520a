package fractal

import (
	"math"
	"testing"
)

func TestMandelbrotStep(t *testing.T) {
	tests := []struct {
		name string
		z, c complex128
		want complex128
	}{
		{"origin", 0, 0, 0},
		{"seed", complex(3, 0), complex(3, 0), complex(12, 0)},
		{"mixed", complex(1, 1), complex(-0.5, 0.25), complex(-0.5, 2.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Mandelbrot{}).Step(tt.z, tt.c); got != tt.want {
				t.Errorf("Step(%v, %v) = %v, want %v", tt.z, tt.c, got, tt.want)
			}
		})
	}
}

func TestJuliaStepIgnoresPixel(t *testing.T) {
	j := Julia{C: complex(-0.8, 0.156)}
	z := complex(0.2, 0.3)
	want := z*z + j.C
	if got := j.Step(z, complex(99, 99)); got != want {
		t.Errorf("Step() = %v, want %v regardless of the pixel's c", got, want)
	}
}

func TestJuliaArgsRoundTrip(t *testing.T) {
	consts := []complex128{
		complex(-0.8, 0.156),
		complex(0.285, 0.01),
		complex(-0.123456789123456789, 1.0/3.0),
		complex(math.Copysign(0, -1), math.SmallestNonzeroFloat64),
	}
	for _, c := range consts {
		j := Julia{C: c}
		got, err := Lookup("julia", j.Args())
		if err != nil {
			t.Errorf("Lookup(julia, %q) = %v, want nil", j.Args(), err)
			continue
		}
		back, ok := got.(Julia)
		if !ok {
			t.Fatalf("Lookup(julia) = %T, want Julia", got)
		}
		if math.Float64bits(real(back.C)) != math.Float64bits(real(c)) ||
			math.Float64bits(imag(back.C)) != math.Float64bits(imag(c)) {
			t.Errorf("round trip of %v = %v, want bit-exact", c, back.C)
		}
	}
}

func TestJuliaDecodeDefault(t *testing.T) {
	f, err := Lookup("julia", "")
	if err != nil {
		t.Fatalf("Lookup(julia, \"\") = %v, want nil", err)
	}
	j, ok := f.(Julia)
	if !ok {
		t.Fatalf("Lookup(julia) = %T, want Julia", f)
	}
	if j.C != complex(-0.8, 0.156) {
		t.Errorf("default constant = %v, want (-0.8+0.156i)", j.C)
	}
}

func TestJuliaDecodeInvalid(t *testing.T) {
	for _, args := range []string{"1.5", "a,b", "1.0,", ",2.0"} {
		if _, err := Lookup("julia", args); err == nil {
			t.Errorf("Lookup(julia, %q) = nil error, want error", args)
		}
	}
}

func TestBurningShipStepFolds(t *testing.T) {
	got := (BurningShip{}).Step(complex(-1, -2), complex(0.5, 0.5))
	folded := complex(1, 2)
	want := folded*folded + complex(0.5, 0.5)
	if got != want {
		t.Errorf("Step() = %v, want %v", got, want)
	}
}

func TestViewports(t *testing.T) {
	x, y := Mandelbrot{}.Viewport()
	if x != (Range{Min: -2.25, Max: 0.75}) || y != (Range{Min: -1.25, Max: 1.25}) {
		t.Errorf("Mandelbrot viewport = (%v, %v)", x, y)
	}
	for _, f := range []Fractal{Mandelbrot{}, Julia{}, BurningShip{}} {
		x, y := f.Viewport()
		if !x.valid() || !y.valid() {
			t.Errorf("%s viewport = (%v, %v), want valid ranges", f.Name(), x, y)
		}
	}
}
