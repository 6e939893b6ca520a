package fractal

// Field is the assembled result of a computation: a row-major grid of
// smoothed escape counts. Interior pixels read 0; escaped pixels carry a
// fractional count that grades smoothly across the escape boundary.
type Field struct {
	width, height int
	values        []float64
}

func newField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// Width returns the grid width in pixels.
func (f *Field) Width() int { return f.width }

// Height returns the grid height in pixels.
func (f *Field) Height() int { return f.height }

// At returns the smoothed escape count of pixel (x, y), or 0 for a
// pixel outside the grid.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.values[y*f.width+x]
}

// Row returns row y as a slice into the field's backing store, or nil
// for a row outside the grid.
func (f *Field) Row(y int) []float64 {
	if y < 0 || y >= f.height {
		return nil
	}
	return f.values[y*f.width : (y+1)*f.width]
}

// Values returns the field's row-major backing store.
func (f *Field) Values() []float64 { return f.values }

// MinMax returns the smallest and largest values in the field. A field
// with no pixels reads as (0, 0).
func (f *Field) MinMax() (lo, hi float64) {
	if len(f.values) == 0 {
		return 0, 0
	}
	lo, hi = f.values[0], f.values[0]
	for _, v := range f.values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
