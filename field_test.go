package fractal

import "testing"

func TestFieldAt(t *testing.T) {
	f := newField(3, 2)
	for i := range f.Values() {
		f.Values()[i] = float64(i)
	}
	if got := f.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %v, want 0", got)
	}
	if got := f.At(2, 0); got != 2 {
		t.Errorf("At(2,0) = %v, want 2", got)
	}
	if got := f.At(0, 1); got != 3 {
		t.Errorf("At(0,1) = %v, want 3", got)
	}
	if got := f.At(2, 1); got != 5 {
		t.Errorf("At(2,1) = %v, want 5", got)
	}
}

func TestFieldRow(t *testing.T) {
	f := newField(4, 3)
	row := f.Row(1)
	if len(row) != 4 {
		t.Fatalf("len(Row(1)) = %d, want 4", len(row))
	}
	row[2] = 7.5
	if got := f.At(2, 1); got != 7.5 {
		t.Errorf("At(2,1) = %v, want 7.5 written through Row", got)
	}
}

func TestFieldDimensions(t *testing.T) {
	f := newField(5, 9)
	if f.Width() != 5 || f.Height() != 9 {
		t.Errorf("dimensions = (%d, %d), want (5, 9)", f.Width(), f.Height())
	}
	if len(f.Values()) != 45 {
		t.Errorf("len(Values()) = %d, want 45", len(f.Values()))
	}
}

func TestFieldMinMax(t *testing.T) {
	f := newField(2, 2)
	copy(f.Values(), []float64{3, -1.5, 0, 8})
	lo, hi := f.MinMax()
	if lo != -1.5 || hi != 8 {
		t.Errorf("MinMax() = (%v, %v), want (-1.5, 8)", lo, hi)
	}
}

func TestFieldAtOutOfRange(t *testing.T) {
	f := newField(3, 2)
	for i := range f.Values() {
		f.Values()[i] = float64(i + 1)
	}
	points := []struct{ x, y int }{
		{-1, 0}, {3, 0}, {0, -1}, {0, 2}, {-1, -1}, {3, 2},
	}
	for _, pt := range points {
		if got := f.At(pt.x, pt.y); got != 0 {
			t.Errorf("At(%d,%d) = %v, want 0", pt.x, pt.y, got)
		}
	}
}

func TestFieldRowOutOfRange(t *testing.T) {
	f := newField(4, 3)
	if got := f.Row(-1); got != nil {
		t.Errorf("Row(-1) = %v, want nil", got)
	}
	if got := f.Row(3); got != nil {
		t.Errorf("Row(3) = %v, want nil", got)
	}
}

// TestFieldZeroValue checks that an empty Field reads as all zeros
// instead of panicking.
func TestFieldZeroValue(t *testing.T) {
	var f Field
	if got := f.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %v, want 0", got)
	}
	if got := f.Row(0); got != nil {
		t.Errorf("Row(0) = %v, want nil", got)
	}
	lo, hi := f.MinMax()
	if lo != 0 || hi != 0 {
		t.Errorf("MinMax() = (%v, %v), want (0, 0)", lo, hi)
	}
	if f.Width() != 0 || f.Height() != 0 {
		t.Errorf("dimensions = (%d, %d), want (0, 0)", f.Width(), f.Height())
	}
}
