package common

import "testing"

func TestQuantizeKeepsDecimalSteps(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		step  float64
		n     int
		want  float64
	}{
		{"ten_tenths", 7, 0.1, 10, 8},
		{"one_tenth", 10, 0.1, 1, 10.1},
		{"down", 3, -0.1, 30, 0},
		{"quarter", 0, 0.25, 6, 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.start
			for i := 0; i < tc.n; i++ {
				v = Quantize(v + tc.step)
			}
			if v != tc.want {
				t.Fatalf("expected exactly %v, got %v", tc.want, v)
			}
		})
	}
}

func TestClampToBoard(t *testing.T) {
	bb := BoardBounds(14, 21)
	tests := []struct {
		name         string
		i, j         float64
		wantI, wantJ float64
	}{
		{"inside", 7, 10, 7, 10},
		{"below", -0.1, -5, 0, 0},
		{"above", 13.1, 20.5, 13, 20},
		{"edges", 13, 0, 13, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			i, j := ClampToBoard(bb, tc.i, tc.j)
			if i != tc.wantI || j != tc.wantJ {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.wantI, tc.wantJ, i, j)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}
