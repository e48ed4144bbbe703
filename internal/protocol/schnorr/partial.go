package schnorr

import (
	"crypto/sha512"
	"io"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/scalar"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// tagPartialChallenge separates partially blind challenges from the plain
// and fully blind protocols.
const tagPartialChallenge = "ed420-partially-blind-schnorr-v1"

// PartiallyBlindSignature is a signature over a blinded message together
// with shared info both parties see in the clear. The info is bound into the
// challenge, so it cannot be altered after signing.
type PartiallyBlindSignature struct {
	Signature
	Info []byte
}

// PartialRequesterSession is the requester's side of a partially blind
// exchange. The moves are the same four as the fully blind protocol and the
// signer's side is an ordinary SignerSession; only the challenge differs, by
// also hashing the shared info.
type PartialRequesterSession struct {
	pub      edwards.Point
	msg      []byte
	info     []byte
	a, b     scalar.Scalar
	e        scalar.Scalar
	consumed bool
}

// NewPartialRequesterSession takes the signer's commitment and the shared
// info, draws the two blinding factors, and builds the blinded commitment
// R' = R + a*G - b*P with challenge e = H(R', P, m, info).
func NewPartialRequesterSession(pub edwards.Point, msg, info []byte, commitment edwards.Point, rand io.Reader) (*PartialRequesterSession, error) {
	a, err := scalar.Random(rand)
	if err != nil {
		return nil, err
	}
	b, err := scalar.Random(rand)
	if err != nil {
		return nil, err
	}
	rPrime := commitment.
		Add(edwards.Generator().ScalarMult(a.BigInt())).
		Sub(pub.ScalarMult(b.BigInt()))
	return &PartialRequesterSession{
		pub:  pub,
		msg:  append([]byte(nil), msg...),
		info: append([]byte(nil), info...),
		a:    a,
		b:    b,
		e:    partialChallenge(rPrime, pub, msg, info),
	}, nil
}

// BlindedChallenge returns eb = e - b for the signer.
func (r *PartialRequesterSession) BlindedChallenge() scalar.Scalar {
	return r.e.Sub(r.b)
}

// Unblind turns the signer's response into the final partially blind
// signature, verified before it is returned. The session is consumed either
// way.
func (r *PartialRequesterSession) Unblind(response scalar.Scalar) (PartiallyBlindSignature, error) {
	if r.consumed {
		return PartiallyBlindSignature{}, ErrSessionConsumed
	}
	r.consumed = true
	sig := PartiallyBlindSignature{
		Signature: Signature{E: r.e, S: response.Add(r.a)},
		Info:      append([]byte(nil), r.info...),
	}
	if err := VerifyPartiallyBlind(r.pub, r.msg, sig); err != nil {
		return PartiallyBlindSignature{}, err
	}
	return sig, nil
}

// VerifyPartiallyBlind recomputes R' = s*G - e*P and accepts iff the
// challenge derived from R' and the carried info equals the claimed one.
func VerifyPartiallyBlind(pub edwards.Point, msg []byte, sig PartiallyBlindSignature) error {
	sG := edwards.Generator().ScalarMult(sig.S.BigInt())
	eP := pub.ScalarMult(sig.E.BigInt())
	rPrime := sG.Sub(eP)
	if !partialChallenge(rPrime, pub, msg, sig.Info).Equal(sig.E) {
		return curve420.ErrVerificationFailed
	}
	return nil
}

func partialChallenge(r, pub edwards.Point, msg, info []byte) scalar.Scalar {
	h := sha512.New()
	h.Write([]byte(tagPartialChallenge))
	h.Write(r.Encode())
	h.Write(pub.Encode())
	h.Write(msg)
	h.Write(info)
	return scalar.FromWideBytes(h.Sum(nil))
}
