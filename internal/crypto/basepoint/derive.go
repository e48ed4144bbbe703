// Package basepoint derives the subgroup generator deterministically from
// public inputs, so anyone can reproduce the published base points without
// trusting the publisher.
package basepoint

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/internal/crypto/montgomery"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// DefaultDomain is the domain-separation string of the default search. Any
// party running Derive reproduces the same generator from it; the frozen
// parameter set predates this procedure and carries its own base point.
const DefaultDomain = "ed420-basepoint-v1"

// DefaultMaxAttempts bounds the candidate search. Exhausting it means the
// parameters are defective, not that the caller should retry.
const DefaultMaxAttempts = 1000

// Result carries the generator in both models. The Edwards point is the
// image of the Montgomery point under the birational map.
type Result struct {
	Montgomery montgomery.Point
	Edwards    edwards.Point
}

// NewStream returns the deterministic candidate stream for a domain string:
// a SHAKE256 reader keyed on the domain. Passing the stream in explicitly
// keeps the search reproducible and testable in isolation.
func NewStream(domain string) io.Reader {
	h := sha3.NewShake256()
	h.Write([]byte(domain))
	return h
}

// Derive runs the canonical search with the published domain string.
func Derive() (Result, error) {
	return DeriveFrom(NewStream(DefaultDomain), DefaultMaxAttempts)
}

// DeriveFrom repeatedly draws a candidate curve point from stream, clears
// the cofactor N/l, and accepts the first result that is non-identity and of
// exact order l. The Edwards image is re-verified against the curve equation
// before publication. Fails with ErrGeneratorNotFound once maxAttempts
// candidates are exhausted; that failure is fatal by policy.
func DeriveFrom(stream io.Reader, maxAttempts int) (Result, error) {
	params := curve420.Params()
	cofactor := new(big.Int).Div(params.N, params.L)

	buf := make([]byte, curve420.EncodedLen)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if _, err := io.ReadFull(stream, buf); err != nil {
			return Result{}, errors.Wrap(err, "basepoint: candidate stream")
		}
		u := field.New(littleEndianInt(buf))

		// Most u are not on the curve; redraw.
		candidate, err := montgomery.FromU(u)
		if err != nil {
			continue
		}

		cleared, err := candidate.ScalarMult(cofactor)
		if err != nil || cleared.IsInfinity() || cleared.U.IsZero() {
			continue
		}

		// Exact order l: l*P must be the identity.
		if _, ok := montgomery.Ladder(cleared.U, params.L); ok {
			continue
		}

		ed, err := cleared.ToEdwards()
		if err != nil {
			continue
		}
		if !ed.IsOnCurve() || !ed.InPrimeSubgroup() {
			continue
		}
		return Result{Montgomery: cleared, Edwards: ed}, nil
	}
	return Result{}, curve420.ErrGeneratorNotFound
}

func littleEndianInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}
