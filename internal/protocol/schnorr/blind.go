package schnorr

import (
	"errors"
	"io"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/scalar"
)

// ErrSessionConsumed is returned when a blind-signing session is driven past
// its single exchange. Sessions are strictly single-use; reusing the signer
// nonce across exchanges would leak the secret key.
var ErrSessionConsumed = errors.New("schnorr: blind session already consumed")

// The blind protocol is four moves:
//
//	1. signer   -> requester: R = k*G
//	2. requester -> signer:   eb = H(R', P, m) - b, where R' = R + a*G - b*P
//	3. signer   -> requester: s = k + eb*sk
//	4. requester:             s' = s + a; signature is (H(R', P, m), s')
//
// The signer sees only (eb, s), which for uniform (a, b) is statistically
// independent of the final signature.

// SignerSession holds the signer's side of one blind exchange.
type SignerSession struct {
	secret     scalar.Scalar
	nonce      scalar.Scalar
	commitment edwards.Point
	consumed   bool
}

// NewSignerSession commits to a fresh nonce (move 1). The commitment R is
// handed to the requester.
func NewSignerSession(kp KeyPair, rand io.Reader) (*SignerSession, error) {
	k, err := scalar.Random(rand)
	if err != nil {
		return nil, err
	}
	return &SignerSession{
		secret:     kp.Secret,
		nonce:      k,
		commitment: edwards.Generator().ScalarMult(k.BigInt()),
	}, nil
}

// Commitment returns R = k*G.
func (s *SignerSession) Commitment() edwards.Point {
	return s.commitment
}

// Respond answers a blinded challenge with s = k + eb*sk (move 3) and
// consumes the session.
func (s *SignerSession) Respond(blindedChallenge scalar.Scalar) (scalar.Scalar, error) {
	if s.consumed {
		return scalar.Scalar{}, ErrSessionConsumed
	}
	s.consumed = true
	return s.nonce.Add(blindedChallenge.Mul(s.secret)), nil
}

// RequesterSession holds the requester's side: the blinding factors, the
// blinded commitment, and the full challenge.
type RequesterSession struct {
	pub      edwards.Point
	msg      []byte
	a, b     scalar.Scalar
	e        scalar.Scalar
	consumed bool
}

// NewRequesterSession takes the signer's commitment and draws the two
// blinding factors (move 2). The blinded commitment is
// R' = R + a*G - b*P and the full challenge e = H(R', P, m).
func NewRequesterSession(pub edwards.Point, msg []byte, commitment edwards.Point, rand io.Reader) (*RequesterSession, error) {
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
	return &RequesterSession{
		pub: pub,
		msg: append([]byte(nil), msg...),
		a:   a,
		b:   b,
		e:   challenge(rPrime, pub, msg),
	}, nil
}

// BlindedChallenge returns eb = e - b, the only challenge the signer sees.
func (r *RequesterSession) BlindedChallenge() scalar.Scalar {
	return r.e.Sub(r.b)
}

// Unblind turns the signer's response into the final signature (move 4):
// s' = s + a, published as (e, s'). The result is verified before it is
// returned, so a misbehaving signer surfaces as ErrVerificationFailed. The
// session is consumed either way.
func (r *RequesterSession) Unblind(response scalar.Scalar) (Signature, error) {
	if r.consumed {
		return Signature{}, ErrSessionConsumed
	}
	r.consumed = true
	sig := Signature{E: r.e, S: response.Add(r.a)}
	if err := Verify(r.pub, r.msg, sig); err != nil {
		return Signature{}, err
	}
	return sig, nil
}
