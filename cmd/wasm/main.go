//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"syscall/js"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/montgomery"
	"github.com/curve420/go-ed420/internal/crypto/scalar"
	"github.com/curve420/go-ed420/internal/protocol/schnorr"
)

// Active blind-signing sessions, one entry per side of an exchange.
// Key: session ID (string). Sessions are single-use and removed after their
// final move.
var (
	signerSessions    = make(map[string]*schnorr.SignerSession)
	requesterSessions = make(map[string]*schnorr.RequesterSession)
	nextSession       int
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ed420 WASM Initialized")

	js.Global().Set("GoEd420", map[string]interface{}{
		"GenerateKey":  js.FuncOf(GenerateKey),
		"Sign":         js.FuncOf(Sign),
		"Verify":       js.FuncOf(Verify),
		"DHGenerate":   js.FuncOf(DHGenerate),
		"DHShared":     js.FuncOf(DHShared),
		"BlindCommit":  js.FuncOf(BlindCommit),
		"BlindRequest": js.FuncOf(BlindRequest),
		"BlindRespond": js.FuncOf(BlindRespond),
		"BlindFinish":  js.FuncOf(BlindFinish),
	})

	<-c
}

func newSessionID() string {
	nextSession++
	return fmt.Sprintf("session-%d", nextSession)
}

func errString(err error) string {
	return fmt.Sprintf("error: %v", err)
}

// GenerateKey draws a signing key pair.
// Returns: {"secret": hex, "public": hex} or an error string.
func GenerateKey(this js.Value, args []js.Value) interface{} {
	kp, err := schnorr.GenerateKey(rand.Reader)
	if err != nil {
		return errString(err)
	}
	return map[string]interface{}{
		"secret": hex.EncodeToString(kp.Secret.Bytes()),
		"public": hex.EncodeToString(kp.Public.Encode()),
	}
}

// Sign signs a message.
// Arguments:
// 0: secret scalar (hex)
// 1: message (string)
// Returns: signature (hex) or an error string.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (secretHex, message)"
	}
	sk, err := parseScalar(args[0].String())
	if err != nil {
		return errString(err)
	}
	sig := schnorr.Sign(schnorr.FromSecret(sk), []byte(args[1].String()))
	return hex.EncodeToString(sig.Bytes())
}

// Verify checks a signature.
// Arguments:
// 0: public point (hex)
// 1: message (string)
// 2: signature (hex)
// Returns: true, or an error string.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (publicHex, message, signatureHex)"
	}
	pub, err := parsePoint(args[0].String())
	if err != nil {
		return errString(err)
	}
	raw, err := hex.DecodeString(args[2].String())
	if err != nil {
		return errString(err)
	}
	sig, err := schnorr.ParseSignature(raw)
	if err != nil {
		return errString(err)
	}
	if err := schnorr.Verify(pub, []byte(args[1].String()), sig); err != nil {
		return errString(err)
	}
	return true
}

// DHGenerate draws a Diffie-Hellman key pair.
// Returns: {"secret": hex, "public": hex} or an error string.
func DHGenerate(this js.Value, args []js.Value) interface{} {
	sk, u, err := montgomery.GenerateKey(rand.Reader)
	if err != nil {
		return errString(err)
	}
	return map[string]interface{}{
		"secret": hex.EncodeToString(sk.Bytes()),
		"public": hex.EncodeToString(montgomery.EncodeU(u)),
	}
}

// DHShared computes the shared secret with a peer public value.
// Arguments:
// 0: own secret (hex)
// 1: peer public u (hex)
// Returns: shared secret (hex) or an error string.
func DHShared(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (secretHex, peerHex)"
	}
	sk, err := parseScalar(args[0].String())
	if err != nil {
		return errString(err)
	}
	peerRaw, err := hex.DecodeString(args[1].String())
	if err != nil {
		return errString(err)
	}
	peer, err := montgomery.DecodeU(peerRaw)
	if err != nil {
		return errString(err)
	}
	shared, err := montgomery.SharedSecret(sk, peer)
	if err != nil {
		return errString(err)
	}
	return hex.EncodeToString(shared)
}

// BlindCommit opens the signer side of a blind exchange (move 1).
// Arguments:
// 0: signer secret (hex)
// Returns: {"session": id, "commitment": hex} or an error string.
func BlindCommit(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (secretHex)"
	}
	sk, err := parseScalar(args[0].String())
	if err != nil {
		return errString(err)
	}
	session, err := schnorr.NewSignerSession(schnorr.FromSecret(sk), rand.Reader)
	if err != nil {
		return errString(err)
	}
	id := newSessionID()
	signerSessions[id] = session
	return map[string]interface{}{
		"session":    id,
		"commitment": hex.EncodeToString(session.Commitment().Encode()),
	}
}

// BlindRequest opens the requester side (move 2).
// Arguments:
// 0: signer public (hex)
// 1: message (string)
// 2: commitment (hex)
// Returns: {"session": id, "challenge": hex} or an error string.
func BlindRequest(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (publicHex, message, commitmentHex)"
	}
	pub, err := parsePoint(args[0].String())
	if err != nil {
		return errString(err)
	}
	commitment, err := parsePoint(args[2].String())
	if err != nil {
		return errString(err)
	}
	session, err := schnorr.NewRequesterSession(pub, []byte(args[1].String()), commitment, rand.Reader)
	if err != nil {
		return errString(err)
	}
	id := newSessionID()
	requesterSessions[id] = session
	return map[string]interface{}{
		"session":   id,
		"challenge": hex.EncodeToString(session.BlindedChallenge().Bytes()),
	}
}

// BlindRespond answers a blinded challenge (move 3) and closes the signer
// session.
// Arguments:
// 0: signer session ID
// 1: blinded challenge (hex)
// Returns: response (hex) or an error string.
func BlindRespond(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (sessionID, challengeHex)"
	}
	id := args[0].String()
	session, ok := signerSessions[id]
	if !ok {
		return "error: unknown signer session"
	}
	delete(signerSessions, id)

	eb, err := parseScalar(args[1].String())
	if err != nil {
		return errString(err)
	}
	response, err := session.Respond(eb)
	if err != nil {
		return errString(err)
	}
	return hex.EncodeToString(response.Bytes())
}

// BlindFinish unblinds the response (move 4) and closes the requester
// session.
// Arguments:
// 0: requester session ID
// 1: response (hex)
// Returns: signature (hex) or an error string.
func BlindFinish(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (sessionID, responseHex)"
	}
	id := args[0].String()
	session, ok := requesterSessions[id]
	if !ok {
		return "error: unknown requester session"
	}
	delete(requesterSessions, id)

	response, err := parseScalar(args[1].String())
	if err != nil {
		return errString(err)
	}
	sig, err := session.Unblind(response)
	if err != nil {
		return errString(err)
	}
	return hex.EncodeToString(sig.Bytes())
}

func parseScalar(h string) (scalar.Scalar, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return scalar.Scalar{}, err
	}
	return scalar.FromBytes(raw)
}

func parsePoint(h string) (edwards.Point, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return edwards.Point{}, err
	}
	return edwards.Decode(raw)
}
