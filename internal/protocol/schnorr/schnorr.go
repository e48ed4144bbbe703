// Package schnorr implements Schnorr signing over the prime-order Edwards
// subgroup, plus a four-move blind variant.
package schnorr

import (
	"crypto/sha512"
	"io"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/scalar"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// Domain-separation tags. Challenges and nonces must never share a hash
// context with each other or with other protocols.
const (
	tagChallenge = "ed420-schnorr-v1"
	tagNonce     = "ed420-schnorr-nonce-v1"
)

// GenerateKey draws a key pair from the given randomness source.
func GenerateKey(rand io.Reader) (KeyPair, error) {
	sk, err := scalar.Random(rand)
	if err != nil {
		return KeyPair{}, err
	}
	return FromSecret(sk), nil
}

// FromSecret expands a secret scalar into a key pair.
func FromSecret(sk scalar.Scalar) KeyPair {
	return KeyPair{
		Secret: sk,
		Public: edwards.Generator().ScalarMult(sk.BigInt()),
	}
}

// Sign produces a signature over msg. The nonce is derived
// deterministically from the secret and the message, so signing is
// repeatable and never reuses a nonce across distinct messages.
func Sign(kp KeyPair, msg []byte) Signature {
	r := deterministicNonce(kp.Secret, msg)
	R := edwards.Generator().ScalarMult(r.BigInt())
	e := challenge(R, kp.Public, msg)
	s := r.Add(e.Mul(kp.Secret))
	return Signature{E: e, S: s}
}

// Verify recomputes R' = s*G - e*P and accepts iff the challenge derived
// from R' equals the claimed one.
func Verify(pub edwards.Point, msg []byte, sig Signature) error {
	sG := edwards.Generator().ScalarMult(sig.S.BigInt())
	eP := pub.ScalarMult(sig.E.BigInt())
	rPrime := sG.Sub(eP)
	if !challenge(rPrime, pub, msg).Equal(sig.E) {
		return curve420.ErrVerificationFailed
	}
	return nil
}

// challenge hashes the canonical encodings of the commitment and public key
// together with the message into a scalar, zero remapped to one.
func challenge(r, pub edwards.Point, msg []byte) scalar.Scalar {
	h := sha512.New()
	h.Write([]byte(tagChallenge))
	h.Write(r.Encode())
	h.Write(pub.Encode())
	h.Write(msg)
	return scalar.FromWideBytes(h.Sum(nil))
}

func deterministicNonce(sk scalar.Scalar, msg []byte) scalar.Scalar {
	h := sha512.New()
	h.Write([]byte(tagNonce))
	h.Write(sk.Bytes())
	h.Write(msg)
	return scalar.FromWideBytes(h.Sum(nil))
}
