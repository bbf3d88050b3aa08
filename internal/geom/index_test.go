package geom

import (
	"errors"
	"slices"
	"testing"
)

func TestFanIndices(t *testing.T) {
	for n := 3; n <= 12; n++ {
		tbl, err := FanIndices(n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(tbl) != 3*(n-2) {
			t.Fatalf("n=%d: expected %d indices, got %d", n, 3*(n-2), len(tbl))
		}
		for i := 0; i < n-2; i++ {
			got := tbl[i*3 : i*3+3]
			want := []int{0, n - 1 - i, n - 2 - i}
			if !slices.Equal(got, want) {
				t.Errorf("n=%d triangle %d: expected %v, got %v", n, i, want, got)
			}
		}
	}
}

func TestFanIndicesQuad(t *testing.T) {
	tbl, err := FanIndices(4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3, 2, 0, 2, 1}; !slices.Equal(tbl, want) {
		t.Fatalf("expected %v, got %v", want, tbl)
	}
}

func TestFanIndicesTooFew(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		if _, err := FanIndices(n); !errors.Is(err, ErrTooFewVertices) {
			t.Errorf("n=%d: expected ErrTooFewVertices, got %v", n, err)
		}
	}
}

func TestQuadIndices(t *testing.T) {
	want := [6]int{0, 3, 2, 2, 1, 0}
	for i := 0; i < 3; i++ {
		if got := QuadIndices(); got != want {
			t.Fatalf("call %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestFlatTable(t *testing.T) {
	tbl, err := FlatTable(3, 4, Fan)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{0, 3, 2, 0, 2, 1},
		{4, 7, 6, 4, 6, 5},
		{8, 11, 10, 8, 10, 9},
	}
	for f := range want {
		if !slices.Equal(tbl[f], want[f]) {
			t.Errorf("face %d: expected %v, got %v", f, want[f], tbl[f])
		}
	}

	if _, err := FlatTable(6, 2, Fan); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
	if _, err := FlatTable(6, 5, QuadRemap); !errors.Is(err, ErrLayout) {
		t.Fatalf("expected ErrLayout, got %v", err)
	}
}
