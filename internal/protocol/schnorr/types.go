package schnorr

import (
	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/scalar"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// KeyPair binds a secret scalar to its public point sk*G. The core never
// persists key material; the caller owns the lifecycle.
type KeyPair struct {
	Secret scalar.Scalar
	Public edwards.Point
}

// Signature is a (challenge, response) pair. Verification recomputes the
// challenge from R' = s*G - e*P and compares.
type Signature struct {
	E scalar.Scalar
	S scalar.Scalar
}

// Bytes serializes the signature as e || s, each 53 bytes little-endian.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, 2*curve420.EncodedLen)
	out = append(out, sig.E.Bytes()...)
	return append(out, sig.S.Bytes()...)
}

// ParseSignature parses the 106-byte wire form, rejecting out-of-range
// scalars.
func ParseSignature(b []byte) (Signature, error) {
	if len(b) != 2*curve420.EncodedLen {
		return Signature{}, curve420.ErrInvalidEncoding
	}
	e, err := scalar.FromBytes(b[:curve420.EncodedLen])
	if err != nil {
		return Signature{}, err
	}
	s, err := scalar.FromBytes(b[curve420.EncodedLen:])
	if err != nil {
		return Signature{}, err
	}
	return Signature{E: e, S: s}, nil
}
