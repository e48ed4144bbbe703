package edwards

import (
	"bytes"

	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// signBit is the most significant bit of the final byte. x occupies at most
// 420 bits of the 424-bit buffer, so the bit is always free.
const signBit = 0x80

// Encode serializes the point as 53 little-endian bytes: x in the low bits,
// the parity of y packed into the top bit of the last byte.
func (p Point) Encode() []byte {
	buf := p.X.Bytes()
	buf[curve420.EncodedLen-1] |= p.Y.Parity() << 7
	return buf
}

// Decode parses a canonical 53-byte encoding. It rejects buffers that are
// out of canonical range, that match no curve point, or that do not
// re-encode to the original bytes.
func Decode(b []byte) (Point, error) {
	if len(b) != curve420.EncodedLen {
		return Point{}, curve420.ErrInvalidEncoding
	}
	xb := make([]byte, curve420.EncodedLen)
	copy(xb, b)
	sign := (xb[curve420.EncodedLen-1] & signBit) >> 7
	xb[curve420.EncodedLen-1] &^= signBit

	x, err := field.FromBytes(xb)
	if err != nil {
		return Point{}, curve420.ErrInvalidEncoding
	}

	// Solve the curve equation for y: y^2 = (1 - a*x^2) / (1 - d*x^2).
	x2 := x.Square()
	den := field.One().Sub(d.Mul(x2))
	denInv, err := den.Inverse()
	if err != nil {
		return Point{}, curve420.ErrInvalidEncoding
	}
	y2 := field.One().Sub(a.Mul(x2)).Mul(denInv)

	y, err := y2.Sqrt()
	if err != nil {
		return Point{}, curve420.ErrInvalidEncoding
	}
	if y.Parity() != sign {
		y = y.Neg()
	}

	p := Point{X: x, Y: y}
	if !p.IsOnCurve() {
		return Point{}, curve420.ErrInvalidEncoding
	}
	// Non-canonical encodings are rejected, not tolerated.
	if !bytes.Equal(p.Encode(), b) {
		return Point{}, curve420.ErrInvalidEncoding
	}
	return p, nil
}
