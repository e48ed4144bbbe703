package montgomery

import (
	"io"

	"github.com/pkg/errors"

	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/internal/crypto/scalar"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// EncodeU serializes a u-coordinate as the 53-byte little-endian wire
// format. Only u travels in a Diffie-Hellman exchange.
func EncodeU(u field.Element) []byte {
	return u.Bytes()
}

// DecodeU parses a peer-supplied u-coordinate. Out-of-range values are
// rejected rather than reduced, and u must lie on the curve (its right-hand
// side must be a square); twist points are refused here and twist strength
// is assessed separately by the audit pipeline.
func DecodeU(b []byte) (field.Element, error) {
	u, err := field.FromBytes(b)
	if err != nil {
		return field.Element{}, err
	}
	if !rhs(u).IsSquare() {
		return field.Element{}, curve420.ErrInvalidEncoding
	}
	return u, nil
}

// GenerateKey draws a Diffie-Hellman key pair: a non-zero scalar and the
// u-coordinate of its multiple of the base point.
func GenerateKey(rand io.Reader) (scalar.Scalar, field.Element, error) {
	sk, err := scalar.Random(rand)
	if err != nil {
		return scalar.Scalar{}, field.Element{}, err
	}
	u, ok := Ladder(Generator().U, sk.BigInt())
	if !ok {
		// The base point has order l and sk is in [1, l-1], so this branch
		// would mean broken parameters.
		return scalar.Scalar{}, field.Element{}, errors.New("montgomery: base point multiple at infinity")
	}
	return sk, u, nil
}

// SharedSecret computes the u-coordinate of sk * peer. A result at infinity
// or with u = 0 means the peer supplied a low-order point; the exchange must
// be rejected, so the all-zero output surfaces as ErrZeroSharedSecret.
func SharedSecret(sk scalar.Scalar, peerU field.Element) ([]byte, error) {
	u, ok := Ladder(peerU, sk.BigInt())
	if !ok || u.IsZero() {
		return nil, curve420.ErrZeroSharedSecret
	}
	return EncodeU(u), nil
}
