// Package field implements arithmetic in GF(p) for p = 2^420 - 335.
//
// Element is an immutable value type holding a canonical representative in
// [0, p). Every operation returns a fresh Element; no method mutates its
// receiver or arguments. This layer is the trusted computing base for the
// curve models above it.
package field

import (
	"math/big"

	"github.com/curve420/go-ed420/pkg/curve420"
)

var p = curve420.Params().P

// Element is a residue mod p in canonical reduced form.
type Element struct {
	v *big.Int
}

// New reduces n mod p. Negative inputs are mapped into [0, p).
func New(n *big.Int) Element {
	return Element{v: new(big.Int).Mod(n, p)}
}

// NewInt reduces a small integer mod p.
func NewInt(n int64) Element {
	return New(big.NewInt(n))
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{v: new(big.Int)}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{v: big.NewInt(1)}
}

// FromBytes parses a little-endian buffer of exactly curve420.EncodedLen
// bytes into a canonical element. Values >= p are rejected, never reduced.
func FromBytes(b []byte) (Element, error) {
	if len(b) != curve420.EncodedLen {
		return Element{}, curve420.ErrInvalidEncoding
	}
	n := new(big.Int).SetBytes(reversed(b))
	if n.Cmp(p) >= 0 {
		return Element{}, curve420.ErrInvalidEncoding
	}
	return Element{v: n}, nil
}

// Bytes serializes the canonical representative as a fixed-width
// little-endian buffer.
func (e Element) Bytes() []byte {
	buf := make([]byte, curve420.EncodedLen)
	e.big().FillBytes(buf)
	return reversed(buf)
}

// Add returns e + other mod p.
func (e Element) Add(other Element) Element {
	return New(new(big.Int).Add(e.big(), other.big()))
}

// Sub returns e - other mod p.
func (e Element) Sub(other Element) Element {
	return New(new(big.Int).Sub(e.big(), other.big()))
}

// Mul returns e * other mod p.
func (e Element) Mul(other Element) Element {
	return New(new(big.Int).Mul(e.big(), other.big()))
}

// Square returns e^2 mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return New(new(big.Int).Neg(e.big()))
}

// Inverse returns e^-1 mod p. Only the zero element fails.
func (e Element) Inverse() (Element, error) {
	inv := new(big.Int).ModInverse(e.big(), p)
	if inv == nil {
		return Element{}, curve420.ErrNotInvertible
	}
	return Element{v: inv}, nil
}

// Pow returns e^exp mod p for a non-negative exponent.
func (e Element) Pow(exp *big.Int) Element {
	return Element{v: new(big.Int).Exp(e.big(), exp, p)}
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.big().Sign() == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.big().Cmp(bigOne) == 0
}

// Equal reports whether two elements hold the same residue.
func (e Element) Equal(other Element) bool {
	return e.big().Cmp(other.big()) == 0
}

// Parity returns the least significant bit of the canonical representative.
func (e Element) Parity() byte {
	return byte(e.big().Bit(0))
}

// BigInt returns a copy of the canonical representative.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.big())
}

func (e Element) String() string {
	return e.big().String()
}

var bigOne = big.NewInt(1)

// big tolerates the zero value of Element so that Zero() and var declarations
// behave identically.
func (e Element) big() *big.Int {
	if e.v == nil {
		return new(big.Int)
	}
	return e.v
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
