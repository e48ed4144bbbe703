// Package scalar implements arithmetic mod the prime subgroup order l.
// Scalars are the private keys, nonces, and blinding factors of the
// signature protocols; like field elements they are immutable value types in
// canonical reduced form.
package scalar

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/curve420/go-ed420/pkg/curve420"
)

var (
	l      = curve420.Params().L
	bigOne = big.NewInt(1)
)

// Scalar is a residue mod l.
type Scalar struct {
	v *big.Int
}

// New reduces n mod l.
func New(n *big.Int) Scalar {
	return Scalar{v: new(big.Int).Mod(n, l)}
}

// NewInt reduces a small integer mod l.
func NewInt(n int64) Scalar {
	return New(big.NewInt(n))
}

// Zero returns the zero scalar.
func Zero() Scalar {
	return Scalar{v: new(big.Int)}
}

// One returns the scalar 1.
func One() Scalar {
	return Scalar{v: big.NewInt(1)}
}

// Random draws a uniform non-zero scalar in [1, l-1] from the given reader.
func Random(rand io.Reader) (Scalar, error) {
	max := new(big.Int).Sub(l, bigOne)
	n, err := randInt(rand, max)
	if err != nil {
		return Scalar{}, errors.Wrap(err, "scalar: draw random")
	}
	n.Add(n, bigOne) // shift [0, l-2] to [1, l-1]
	return Scalar{v: n}, nil
}

// FromWideBytes interprets b (big-endian, typically a 64-byte hash output)
// as an integer and reduces it mod l. A reduction that lands on zero is
// remapped to 1 so the result is always usable as a nonce or challenge.
func FromWideBytes(b []byte) Scalar {
	n := new(big.Int).SetBytes(b)
	n.Mod(n, l)
	if n.Sign() == 0 {
		n.SetInt64(1)
	}
	return Scalar{v: n}
}

// FromBytes parses a little-endian buffer of curve420.EncodedLen bytes.
// Values >= l are rejected.
func FromBytes(b []byte) (Scalar, error) {
	if len(b) != curve420.EncodedLen {
		return Scalar{}, curve420.ErrInvalidEncoding
	}
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	n := new(big.Int).SetBytes(be)
	if n.Cmp(l) >= 0 {
		return Scalar{}, curve420.ErrInvalidEncoding
	}
	return Scalar{v: n}, nil
}

// Bytes serializes the scalar as a fixed-width little-endian buffer.
func (s Scalar) Bytes() []byte {
	buf := make([]byte, curve420.EncodedLen)
	s.big().FillBytes(buf)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Add returns s + other mod l.
func (s Scalar) Add(other Scalar) Scalar {
	return New(new(big.Int).Add(s.big(), other.big()))
}

// Sub returns s - other mod l.
func (s Scalar) Sub(other Scalar) Scalar {
	return New(new(big.Int).Sub(s.big(), other.big()))
}

// Mul returns s * other mod l.
func (s Scalar) Mul(other Scalar) Scalar {
	return New(new(big.Int).Mul(s.big(), other.big()))
}

// Neg returns -s mod l.
func (s Scalar) Neg() Scalar {
	return New(new(big.Int).Neg(s.big()))
}

// Inverse returns s^-1 mod l. Only the zero scalar fails.
func (s Scalar) Inverse() (Scalar, error) {
	inv := new(big.Int).ModInverse(s.big(), l)
	if inv == nil {
		return Scalar{}, curve420.ErrNotInvertible
	}
	return Scalar{v: inv}, nil
}

// IsZero reports whether s is zero.
func (s Scalar) IsZero() bool {
	return s.big().Sign() == 0
}

// Equal reports whether two scalars hold the same residue.
func (s Scalar) Equal(other Scalar) bool {
	return s.big().Cmp(other.big()) == 0
}

// BigInt returns a copy of the canonical representative.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.big())
}

func (s Scalar) String() string {
	return s.big().String()
}

func (s Scalar) big() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}
	return s.v
}

func randInt(rand io.Reader, max *big.Int) (*big.Int, error) {
	// rand.Int from crypto/rand, inlined so the reader stays injectable for
	// deterministic tests.
	bitLen := max.BitLen()
	byteLen := (bitLen + 7) / 8
	b := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(rand, b); err != nil {
			return nil, err
		}
		// Mask excess top bits to keep rejection sampling efficient.
		b[0] &= byte(0xff >> (uint(byteLen*8 - bitLen)))
		n := new(big.Int).SetBytes(b)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
