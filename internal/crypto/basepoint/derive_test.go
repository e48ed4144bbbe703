package basepoint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/curve420/go-ed420/internal/crypto/montgomery"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// The first candidate the default stream yields already survives the search,
// so the canonical derivation is pinned down to a single point.
const derivedU = "1513836754067830321979057875162397854124957725071398726630691600874099397250119376717047647110603385378036176110840434897681395"

func TestDeriveIsDeterministic(t *testing.T) {
	r1, err := Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	r2, err := DeriveFrom(NewStream(DefaultDomain), DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("DeriveFrom failed: %v", err)
	}
	if !r1.Montgomery.Equal(r2.Montgomery) || !r1.Edwards.Equal(r2.Edwards) {
		t.Error("two runs over the same domain disagree")
	}

	want, ok := new(big.Int).SetString(derivedU, 10)
	if !ok {
		t.Fatal("bad test literal")
	}
	if r1.Montgomery.U.BigInt().Cmp(want) != 0 {
		t.Errorf("derived u = %s, fixture mismatch", r1.Montgomery.U)
	}
}

func TestDerivedGeneratorProperties(t *testing.T) {
	r, err := Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if !r.Montgomery.IsOnCurve() {
		t.Error("Montgomery generator is off the curve")
	}
	if r.Montgomery.IsInfinity() || r.Montgomery.U.IsZero() {
		t.Error("generator is a low-order point")
	}
	if _, ok := montgomery.Ladder(r.Montgomery.U, curve420.Params().L); ok {
		t.Error("l*G_M is not the identity")
	}

	if !r.Edwards.IsOnCurve() {
		t.Error("Edwards generator is off the curve")
	}
	if !r.Edwards.InPrimeSubgroup() {
		t.Error("Edwards generator is not of order l")
	}

	// The two halves of the result are images of each other.
	mapped, err := r.Montgomery.ToEdwards()
	if err != nil {
		t.Fatalf("ToEdwards failed: %v", err)
	}
	if !mapped.Equal(r.Edwards) {
		t.Error("Edwards half is not the image of the Montgomery half")
	}
}

func TestDeriveDomainSeparation(t *testing.T) {
	r1, err := DeriveFrom(NewStream("ed420-basepoint-v1"), DefaultMaxAttempts)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := DeriveFrom(NewStream("ed420-basepoint-v2"), DefaultMaxAttempts)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Montgomery.Equal(r2.Montgomery) {
		t.Error("different domains produced the same generator")
	}
}

func TestDeriveExhaustion(t *testing.T) {
	if _, err := DeriveFrom(NewStream(DefaultDomain), 0); !errors.Is(err, curve420.ErrGeneratorNotFound) {
		t.Errorf("err = %v, want ErrGeneratorNotFound", err)
	}
}
