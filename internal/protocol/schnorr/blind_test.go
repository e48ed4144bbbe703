package schnorr

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curve420/go-ed420/internal/crypto/scalar"
	"github.com/curve420/go-ed420/pkg/curve420"
)

func runBlindExchange(t *testing.T, kp KeyPair, msg []byte, rng *rand.Rand) Signature {
	t.Helper()

	signer, err := NewSignerSession(kp, rng)
	require.NoError(t, err)

	requester, err := NewRequesterSession(kp.Public, msg, signer.Commitment(), rng)
	require.NoError(t, err)

	response, err := signer.Respond(requester.BlindedChallenge())
	require.NoError(t, err)

	sig, err := requester.Unblind(response)
	require.NoError(t, err)
	return sig
}

func TestBlindSignVerify(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	kp := FromSecret(scalar.NewInt(123))
	msg := []byte("blind me")

	sig := runBlindExchange(t, kp, msg, rng)

	// The result is an ordinary signature under the signer's key.
	require.NoError(t, Verify(kp.Public, msg, sig))
	assert.ErrorIs(t, Verify(kp.Public, []byte("other"), sig), curve420.ErrVerificationFailed)
}

func TestBlindSignSampled(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 8; i++ {
		kp, err := GenerateKey(rng)
		require.NoError(t, err)

		msg := make([]byte, 24)
		rng.Read(msg)

		sig := runBlindExchange(t, kp, msg, rng)
		require.NoError(t, Verify(kp.Public, msg, sig))
	}
}

func TestBlindSignatureUnlinkable(t *testing.T) {
	// Two exchanges over the same message with the same key still produce
	// distinct transcripts and distinct signatures, since the blinding and
	// the nonce are fresh per session.
	rng := rand.New(rand.NewSource(17))
	kp := FromSecret(scalar.NewInt(123))
	msg := []byte("same message")

	s1 := runBlindExchange(t, kp, msg, rng)
	s2 := runBlindExchange(t, kp, msg, rng)

	assert.False(t, s1.E.Equal(s2.E))
	assert.False(t, s1.S.Equal(s2.S))
	require.NoError(t, Verify(kp.Public, msg, s1))
	require.NoError(t, Verify(kp.Public, msg, s2))
}

func TestSignerSessionSingleUse(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	kp := FromSecret(scalar.NewInt(123))

	signer, err := NewSignerSession(kp, rng)
	require.NoError(t, err)

	_, err = signer.Respond(scalar.NewInt(5))
	require.NoError(t, err)

	_, err = signer.Respond(scalar.NewInt(6))
	assert.ErrorIs(t, err, ErrSessionConsumed)
}

func TestRequesterSessionSingleUse(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	kp := FromSecret(scalar.NewInt(123))
	msg := []byte("once")

	signer, err := NewSignerSession(kp, rng)
	require.NoError(t, err)
	requester, err := NewRequesterSession(kp.Public, msg, signer.Commitment(), rng)
	require.NoError(t, err)

	response, err := signer.Respond(requester.BlindedChallenge())
	require.NoError(t, err)

	_, err = requester.Unblind(response)
	require.NoError(t, err)

	_, err = requester.Unblind(response)
	assert.ErrorIs(t, err, ErrSessionConsumed)
}

func TestUnblindRejectsBadResponse(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	kp := FromSecret(scalar.NewInt(123))
	msg := []byte("cheat")

	signer, err := NewSignerSession(kp, rng)
	require.NoError(t, err)
	requester, err := NewRequesterSession(kp.Public, msg, signer.Commitment(), rng)
	require.NoError(t, err)

	response, err := signer.Respond(requester.BlindedChallenge())
	require.NoError(t, err)

	// A misbehaving signer's response fails the built-in verification.
	_, err = requester.Unblind(response.Add(scalar.One()))
	assert.ErrorIs(t, err, curve420.ErrVerificationFailed)
}

func TestSignerSeesOnlyBlindedValues(t *testing.T) {
	// The blinded challenge differs from the final challenge, so the signer
	// cannot match a published signature to its transcript by comparison.
	rng := rand.New(rand.NewSource(31))
	kp := FromSecret(scalar.NewInt(123))
	msg := []byte("hidden")

	signer, err := NewSignerSession(kp, rng)
	require.NoError(t, err)
	requester, err := NewRequesterSession(kp.Public, msg, signer.Commitment(), rng)
	require.NoError(t, err)

	eb := requester.BlindedChallenge()
	response, err := signer.Respond(eb)
	require.NoError(t, err)

	sig, err := requester.Unblind(response)
	require.NoError(t, err)

	assert.False(t, sig.E.Equal(eb))
	assert.False(t, sig.S.Equal(response))
}
