package fraction

import (
	"errors"
	"math"
	"strconv"
)

// ErrNonPositive is returned when a coprime search is asked for n <= 0.
var ErrNonPositive = errors.New("fraction: input must be a positive integer")

const (
	MinTargetDen = 3
	MaxTargetDen = 25
)

// CandidateDens are the denominators tried when displaying a guess.
var CandidateDens = func() []int {
	out := make([]int, 0, 30)
	for d := 31; d <= 60; d++ {
		out = append(out, d)
	}
	return out
}()

// Ratio is a numerator/denominator pair.
type Ratio struct {
	Num, Den int
}

// Float is the ratio as a real number.
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Ratio) String() string {
	return strconv.Itoa(r.Num) + "/" + strconv.Itoa(r.Den)
}

// Reduce divides both terms by their greatest common divisor.
func (r Ratio) Reduce() Ratio {
	d := GCD(r.Num, r.Den)
	if d == 0 {
		return r
	}
	return Ratio{Num: r.Num / d, Den: r.Den / d}
}

// GCD is Euclid's algorithm.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Coprimes lists every i in [1, n] with gcd(i, n) == 1.
func Coprimes(n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrNonPositive
	}
	var out []int
	for i := 1; i <= n; i++ {
		if GCD(i, n) == 1 {
			out = append(out, i)
		}
	}
	return out, nil
}

// Rand is the randomness targets are drawn from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewTarget draws a denominator in [3, 25] and a numerator coprime to it.
func NewTarget(rng Rand) (Ratio, error) {
	den := rng.IntN(MaxTargetDen-MinTargetDen+1) + MinTargetDen
	nums, err := Coprimes(den)
	if err != nil {
		return Ratio{}, err
	}
	return Ratio{Num: nums[rng.IntN(len(nums))], Den: den}, nil
}

// Approximate finds the candidate denominator whose nearest numerator comes
// closest to x and returns that fraction in lowest terms. Ties keep the
// smaller denominator.
func Approximate(x float64) Ratio {
	best := Ratio{Num: int(math.Round(x * float64(CandidateDens[0]))), Den: CandidateDens[0]}
	bestErr := math.Abs(best.Float() - x)
	for _, d := range CandidateDens[1:] {
		c := Ratio{Num: int(math.Round(x * float64(d))), Den: d}
		if e := math.Abs(c.Float() - x); e < bestErr {
			best, bestErr = c, e
		}
	}
	return best.Reduce()
}
