package bezier

import "math"

// Binomial returns the binomial coefficient C(n, k).
//
// The coefficient is built with the multiplicative recurrence
// res = res * (n-k+i) / i for i in 1..k, carried out in floating point and
// rounded half-up at the end. The intermediate values stay small enough for
// the control point counts of interactive curves, where n! would overflow
// an int long before C(n, k) does.
//
// Binomial returns 0 when k < 0 or k > n.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-k+i) / float64(i)
	}
	return int(res + 0.5)
}

// Bernstein returns the weight of the k-th control point of a degree-n Bézier
// curve at parameter t, C(n, k) · t^k · (1-t)^(n-k).
//
// For t in [0, 1] the weights of k = 0..n sum to 1. t isn't restricted to
// that range.
func Bernstein(n, k int, t float64) float64 {
	return float64(Binomial(n, k)) * math.Pow(t, float64(k)) * math.Pow(1.0-t, float64(n-k))
}
