package bezier

import (
	"math"
	"testing"
)

func TestBinomial(t *testing.T) {
	// Rows of Pascal's triangle.
	want := [][]int{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
		{1, 4, 6, 4, 1},
		{1, 5, 10, 10, 5, 1},
	}
	for n, row := range want {
		for k, c := range row {
			if got := Binomial(n, k); got != c {
				t.Errorf("C(%d, %d) = %d, want %d", n, k, got, c)
			}
		}
	}

	if got := Binomial(30, 15); got != 155117520 {
		t.Errorf("C(30, 15) = %d, want 155117520", got)
	}
	if got := Binomial(3, 4); got != 0 {
		t.Errorf("C(3, 4) = %d, want 0", got)
	}
	if got := Binomial(3, -1); got != 0 {
		t.Errorf("C(3, -1) = %d, want 0", got)
	}
}

func TestBinomialSymmetry(t *testing.T) {
	for n := range 40 {
		if c := Binomial(n, 0); c != 1 {
			t.Errorf("C(%d, 0) = %d, want 1", n, c)
		}
		if c := Binomial(n, n); c != 1 {
			t.Errorf("C(%d, %d) = %d, want 1", n, n, c)
		}
		for k := range n + 1 {
			if a, b := Binomial(n, k), Binomial(n, n-k); a != b {
				t.Errorf("C(%d, %d) = %d but C(%d, %d) = %d", n, k, a, n, n-k, b)
			}
		}
	}
}

func TestBinomialPascalRule(t *testing.T) {
	// Guards against the float recurrence silently rounding a coefficient
	// down.
	for n := 1; n < 40; n++ {
		for k := 1; k < n; k++ {
			if got, want := Binomial(n, k), Binomial(n-1, k-1)+Binomial(n-1, k); got != want {
				t.Errorf("C(%d, %d) = %d, want %d", n, k, got, want)
			}
		}
	}
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	const epsilon = 1e-9
	for n := 1; n <= 20; n++ {
		for i := range 101 {
			ts := float64(i) / 100
			sum := 0.0
			for k := range n + 1 {
				sum += Bernstein(n, k, ts)
			}
			if d := math.Abs(sum - 1); d > epsilon {
				t.Fatalf("weights of degree %d at t=%g sum to %g", n, ts, sum)
			}
		}
	}
}
