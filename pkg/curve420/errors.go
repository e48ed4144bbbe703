package curve420

import "errors"

// Common errors returned by the curve420 library.
var (
	// ErrNotInvertible is returned when a modular inverse of zero is requested.
	ErrNotInvertible = errors.New("curve420: element is not invertible")

	// ErrNoSquareRoot is returned when a square root of a quadratic
	// non-residue is requested.
	ErrNoSquareRoot = errors.New("curve420: element has no square root")

	// ErrUndefinedMapping is returned when the birational map between the
	// Montgomery and Edwards models is evaluated at one of its poles.
	ErrUndefinedMapping = errors.New("curve420: point mapping undefined at this point")

	// ErrInvalidEncoding is returned when a byte buffer is out of canonical
	// range, decodes to no curve point, or does not round-trip bit-exactly.
	ErrInvalidEncoding = errors.New("curve420: invalid point encoding")

	// ErrGeneratorNotFound is returned when the bounded base-point search is
	// exhausted. This indicates a parameter defect, not a transient condition.
	ErrGeneratorNotFound = errors.New("curve420: generator search exhausted retry budget")

	// ErrVerificationFailed is returned when a signature check does not hold.
	ErrVerificationFailed = errors.New("curve420: signature verification failed")

	// ErrZeroSharedSecret is returned when a Diffie-Hellman exchange yields
	// the identity. The caller must reject the handshake.
	ErrZeroSharedSecret = errors.New("curve420: all-zero shared secret")
)
