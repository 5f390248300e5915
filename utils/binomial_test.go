package utils

import (
	"math/rand"
	"testing"
)

func TestBinomialBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		got := Binomial(r, 100, 0.5)
		if got < 0 || got > 100 {
			t.Fatalf("Binomial(100, 0.5) = %d; want within [0, 100]", got)
		}
	}
}

func TestBinomialEdgeCases(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	tests := []struct {
		n    int
		p    float64
		want int
	}{
		{0, 0.5, 0},
		{-5, 0.5, 0},
		{10, 0, 0},
		{10, -0.3, 0},
		{10, 1, 10},
		{10, 1.5, 10},
	}

	for _, tt := range tests {
		got := Binomial(r, tt.n, tt.p)
		if got != tt.want {
			t.Errorf("Binomial(%d, %.1f) = %d; want %d", tt.n, tt.p, got, tt.want)
		}
	}
}

func TestBinomialDeterministicForSameSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		x := Binomial(a, 80, 0.25)
		y := Binomial(b, 80, 0.25)
		if x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.3, 0, 0.5, 0.3},
		{0.9, 0, 0.5, 0.5},
		{-1, 0, 0.5, 0},
	}

	for _, tt := range tests {
		got := Clamp(tt.v, tt.lo, tt.hi)
		if got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v; want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
