package rules

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewContradictory(t *testing.T) {
	tests := []struct {
		name                                       string
		minSurvive, maxSurvive, minSpawn, maxSpawn int
	}{
		{"survive inverted", 2, 1, 3, 3},
		{"spawn inverted", 2, 2, 3, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.minSurvive, tc.maxSurvive, tc.minSpawn, tc.maxSpawn)
			if !errors.Is(err, ErrContradictoryRules) {
				t.Fatalf("error = %v, want %v", err, ErrContradictoryRules)
			}
		})
	}

	r, err := New(2, 3, 3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r != Default() {
		t.Fatalf("New(2, 3, 3, 3) = %v, want %v", r, Default())
	}
}

func TestCellShouldDie(t *testing.T) {
	r := Default()
	want := []bool{true, true, false, false, true, true, true, true, true}
	for n, die := range want {
		if got := r.CellShouldDie(n); got != die {
			t.Fatalf("CellShouldDie(%d) = %v, want %v", n, got, die)
		}
	}
}

func TestCellShouldSpawn(t *testing.T) {
	r := Default()
	want := []bool{false, false, false, true, false, false, false, false, false}
	for n, spawn := range want {
		if got := r.CellShouldSpawn(n); got != spawn {
			t.Fatalf("CellShouldSpawn(%d) = %v, want %v", n, got, spawn)
		}
	}
}

func TestApply(t *testing.T) {
	r := Default()
	for n := 0; n <= 8; n++ {
		// Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
		for _, alive := range []bool{true, false} {
			want := (alive && n == 2) || n == 3
			if got := r.Apply(n, alive); got != want {
				t.Fatalf("Apply(%d, %v) = %v, want %v", n, alive, got, want)
			}
		}
	}

	highLife, err := New(2, 3, 3, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !highLife.Apply(6, false) || highLife.Apply(6, true) {
		t.Fatalf("custom bounds not applied")
	}
}

func TestString(t *testing.T) {
	if got, want := Default().String(), "survive [2,3] spawn [3,3]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
