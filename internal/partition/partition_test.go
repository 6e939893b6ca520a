package partition

import (
	"errors"
	"reflect"
	"testing"
)

func TestSpans(t *testing.T) {
	tests := []struct {
		name string
		rows int
		n    int
		want []Span
	}{
		{"single", 1, 1, []Span{{0, 1}}},
		{"even split", 8, 4, []Span{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		// 2.5 rounds down to the even integer 2.
		{"half to even down", 5, 2, []Span{{0, 2}, {2, 5}}},
		// 7.5 rounds up to the even integer 8.
		{"half to even up", 15, 2, []Span{{0, 8}, {8, 15}}},
		{"uneven thirds", 7, 3, []Span{{0, 2}, {2, 5}, {5, 7}}},
		{"more tasks than even split", 6, 4, []Span{{0, 2}, {2, 3}, {3, 4}, {4, 6}}},
		{"one per row", 4, 4, []Span{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Spans(tt.rows, tt.n)
			if err != nil {
				t.Fatalf("Spans(%d, %d) error = %v, want nil", tt.rows, tt.n, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Spans(%d, %d) = %v, want %v", tt.rows, tt.n, got, tt.want)
			}
		})
	}
}

// TestSpansTileExactly sweeps every (rows, n) pair up to 512 rows and checks
// the tiling invariant: spans are non-empty, contiguous, and cover [0, rows).
func TestSpansTileExactly(t *testing.T) {
	for rows := 1; rows <= 512; rows++ {
		for n := 1; n <= rows; n++ {
			spans, err := Spans(rows, n)
			if err != nil {
				t.Fatalf("Spans(%d, %d) error = %v, want nil", rows, n, err)
			}
			if len(spans) != n {
				t.Fatalf("Spans(%d, %d) returned %d spans, want %d", rows, n, len(spans), n)
			}
			if spans[0].Start != 0 {
				t.Errorf("Spans(%d, %d)[0].Start = %d, want 0", rows, n, spans[0].Start)
			}
			if spans[n-1].End != rows {
				t.Errorf("Spans(%d, %d) last End = %d, want %d", rows, n, spans[n-1].End, rows)
			}
			for i, s := range spans {
				if s.Len() < 1 {
					t.Errorf("Spans(%d, %d)[%d] = %v is empty", rows, n, i, s)
				}
				if i > 0 && spans[i-1].End != s.Start {
					t.Errorf("Spans(%d, %d): span %d starts at %d, previous ends at %d",
						rows, n, i, s.Start, spans[i-1].End)
				}
			}
		}
	}
}

func TestSpansDeterministic(t *testing.T) {
	a, err := Spans(1080, 7)
	if err != nil {
		t.Fatalf("Spans() error = %v, want nil", err)
	}
	b, err := Spans(1080, 7)
	if err != nil {
		t.Fatalf("Spans() error = %v, want nil", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Spans() not deterministic: %v vs %v", a, b)
	}
}

func TestSpansInvalid(t *testing.T) {
	tests := []struct {
		name string
		rows int
		n    int
	}{
		{"zero tasks", 10, 0},
		{"negative tasks", 10, -3},
		{"more tasks than rows", 10, 11},
		{"zero rows", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Spans(tt.rows, tt.n); !errors.Is(err, ErrInvalidPartition) {
				t.Errorf("Spans(%d, %d) error = %v, want ErrInvalidPartition", tt.rows, tt.n, err)
			}
		})
	}
}
