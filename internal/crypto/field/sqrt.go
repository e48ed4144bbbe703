package field

import (
	"math/big"

	"github.com/curve420/go-ed420/pkg/curve420"
)

// Symbol is the result of a quadratic-residue test.
type Symbol int

const (
	NonSquare Symbol = -1
	ZeroSym   Symbol = 0
	Square    Symbol = 1
)

var legendreExp = new(big.Int).Rsh(new(big.Int).Sub(p, bigOne), 1) // (p-1)/2

// Legendre computes the Legendre symbol (e|p) by exponentiation to (p-1)/2.
func (e Element) Legendre() Symbol {
	if e.IsZero() {
		return ZeroSym
	}
	r := e.Pow(legendreExp)
	if r.IsOne() {
		return Square
	}
	return NonSquare
}

// IsSquare reports whether e is a quadratic residue. Zero counts as a square.
func (e Element) IsSquare() bool {
	return e.Legendre() != NonSquare
}

// Sqrt returns a square root of e via Tonelli-Shanks. Since p = 1 (mod 4) the
// exponentiation shortcut for p = 3 (mod 4) does not apply here. When e is a
// non-residue the call fails with ErrNoSquareRoot. The returned root is one
// of the two; callers select by parity.
func (e Element) Sqrt() (Element, error) {
	if e.IsZero() {
		return Zero(), nil
	}
	if e.Legendre() != Square {
		return Element{}, curve420.ErrNoSquareRoot
	}

	// Factor p - 1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, bigOne)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find a quadratic non-residue z.
	z := NewInt(2)
	for z.Legendre() != NonSquare {
		z = z.Add(One())
	}

	c := z.Pow(q)
	t := e.Pow(q)
	r := e.Pow(new(big.Int).Rsh(new(big.Int).Add(q, bigOne), 1)) // e^((q+1)/2)
	m := s

	for !t.IsOne() {
		// Smallest i in [1, m) with t^(2^i) == 1.
		i := 1
		t2i := t.Square()
		for !t2i.IsOne() {
			t2i = t2i.Square()
			i++
		}

		// b = c^(2^(m-i-1))
		b := c
		for j := 0; j < m-i-1; j++ {
			b = b.Square()
		}

		r = r.Mul(b)
		c = b.Square()
		t = t.Mul(c)
		m = i
	}
	return r, nil
}
