// Package partition splits a row range into contiguous half-open spans.
//
// A grid of H rows divided into n tasks yields spans
//
//	[round(i*H/n), round((i+1)*H/n))   for i in 0..n-1
//
// with round-half-to-even rounding at the boundaries. Adjacent spans share
// their boundary row index, so the spans tile [0, H) exactly: every row
// belongs to exactly one span, with no gaps and no overlap. For n <= H no
// span is empty. The same (H, n) always produces the same spans.
package partition

import (
	"errors"
	"math"
)

// ErrInvalidPartition reports a task count that cannot tile the row range.
var ErrInvalidPartition = errors.New("partition: task count must be positive and at most the row count")

// Span is a half-open range of row indices [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of rows in the span.
func (s Span) Len() int { return s.End - s.Start }

// Spans divides rows into n contiguous spans.
// It fails with ErrInvalidPartition when n < 1 or n > rows.
func Spans(rows, n int) ([]Span, error) {
	if n < 1 || n > rows {
		return nil, ErrInvalidPartition
	}
	step := float64(rows) / float64(n)
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{
			Start: int(math.RoundToEven(float64(i) * step)),
			End:   int(math.RoundToEven(float64(i+1) * step)),
		}
	}
	return spans, nil
}
