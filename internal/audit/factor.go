package audit

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// Strategy is one bounded attempt at splitting an integer. Implementations
// return a non-trivial factor or report that the search budget ran out;
// they never claim the input is prime.
type Strategy interface {
	Name() string
	FindFactor(n *big.Int) (*big.Int, bool)
}

// TrialDivision scans odd candidates up to Bound.
type TrialDivision struct {
	Bound uint64
}

func (t TrialDivision) Name() string { return "trial-division" }

// FindFactor returns the smallest factor of n in [2, Bound], if any.
func (t TrialDivision) FindFactor(n *big.Int) (*big.Int, bool) {
	if n.Bit(0) == 0 && n.Cmp(two) > 0 {
		return new(big.Int).Set(two), true
	}
	q := new(big.Int)
	r := new(big.Int)
	for d := uint64(3); d <= t.Bound; d += 2 {
		div := new(big.Int).SetUint64(d)
		if q.QuoRem(n, div, r); r.Sign() == 0 && q.Cmp(one) > 0 {
			return div, true
		}
	}
	return nil, false
}

// PollardRho runs up to Attempts independent randomized rho walks, each
// capped at MaxIterations steps. Attempts are independent, so they run on
// separate goroutines; the first factor found wins.
type PollardRho struct {
	Attempts      int
	MaxIterations int
}

func (p PollardRho) Name() string { return "pollard-rho" }

func (p PollardRho) FindFactor(n *big.Int) (*big.Int, bool) {
	if n.Bit(0) == 0 {
		return new(big.Int).Set(two), true
	}

	found := make(chan *big.Int, p.Attempts)
	var wg sync.WaitGroup
	for i := 0; i < p.Attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f := rhoWalk(n, p.MaxIterations); f != nil {
				found <- f
			}
		}()
	}
	wg.Wait()
	close(found)

	if f, ok := <-found; ok {
		return f, true
	}
	return nil, false
}

// rhoWalk is one Floyd-cycle rho iteration x -> x^2 + c with random start
// and increment. Returns nil when the iteration budget is exhausted or the
// walk degenerates.
func rhoWalk(n *big.Int, maxIterations int) *big.Int {
	x, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil
	}
	c, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil
	}
	if c.Sign() == 0 {
		c.SetInt64(1)
	}

	y := new(big.Int).Set(x)
	d := new(big.Int)
	diff := new(big.Int)

	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, c)
		v.Mod(v, n)
	}

	for i := 0; i < maxIterations; i++ {
		step(x)
		step(y)
		step(y)
		diff.Sub(x, y)
		diff.Abs(diff)
		if diff.Sign() == 0 {
			return nil // cycle closed without a factor
		}
		d.GCD(nil, nil, diff, n)
		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			return new(big.Int).Set(d)
		}
	}
	return nil
}
