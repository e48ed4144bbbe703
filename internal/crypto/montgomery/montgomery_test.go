package montgomery

import (
	"errors"
	"math/big"
	"testing"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/pkg/curve420"
)

func TestGeneratorOnCurve(t *testing.T) {
	if !Generator().IsOnCurve() {
		t.Fatal("generator is not on the curve")
	}
}

func TestFromU(t *testing.T) {
	// The frozen base v already carries even parity, so the lift must
	// reproduce the generator exactly.
	p, err := FromU(Generator().U)
	if err != nil {
		t.Fatalf("FromU failed: %v", err)
	}
	if !p.Equal(Generator()) {
		t.Error("lift of the base u is not the base point")
	}

	// u = 2 lies on the curve, u = 3 does not.
	if _, err := FromU(field.NewInt(2)); err != nil {
		t.Errorf("u=2 should lift: %v", err)
	}
	if _, err := FromU(field.NewInt(3)); !errors.Is(err, curve420.ErrNoSquareRoot) {
		t.Errorf("u=3: err = %v, want ErrNoSquareRoot", err)
	}
}

func TestLadderOrder(t *testing.T) {
	g := Generator()
	l := curve420.Params().L

	if _, ok := Ladder(g.U, l); ok {
		t.Error("l*G should be infinity")
	}
	if _, ok := Ladder(g.U, new(big.Int).Set(curve420.Params().N)); ok {
		t.Error("N*G should be infinity")
	}
	u, ok := Ladder(g.U, big.NewInt(1))
	if !ok || !u.Equal(g.U) {
		t.Error("1*G should be G")
	}
	if _, ok := Ladder(g.U, big.NewInt(0)); ok {
		t.Error("0*G should be infinity")
	}
}

func TestLadderNegationSymmetry(t *testing.T) {
	// k and l-k produce points differing only in the sign of v, so the
	// u-only ladder cannot tell them apart.
	g := Generator()
	l := curve420.Params().L
	k := big.NewInt(424242)

	u1, ok := Ladder(g.U, k)
	if !ok {
		t.Fatal("k*G unexpectedly infinity")
	}
	u2, ok := Ladder(g.U, new(big.Int).Sub(l, k))
	if !ok {
		t.Fatal("(l-k)*G unexpectedly infinity")
	}
	if !u1.Equal(u2) {
		t.Error("u(k*G) != u((l-k)*G)")
	}
}

func TestScalarMultMatchesEdwards(t *testing.T) {
	// The two models must agree through the birational map.
	for _, k := range []int64{2, 3, 123, 99991} {
		ep := edwards.Generator().ScalarMult(big.NewInt(k))
		mapped, err := FromEdwards(ep)
		if err != nil {
			t.Fatalf("k=%d: FromEdwards failed: %v", k, err)
		}

		mp, err := Generator().ScalarMult(big.NewInt(k))
		if err != nil {
			t.Fatalf("k=%d: ScalarMult failed: %v", k, err)
		}
		// The ladder result carries the even root, which may be the negation
		// of the mapped v; u must match either way.
		if !mp.U.Equal(mapped.U) {
			t.Errorf("k=%d: models disagree on u", k)
		}
		if !mp.IsOnCurve() {
			t.Errorf("k=%d: ladder left the curve", k)
		}
	}
}

func TestScalarMultInfinity(t *testing.T) {
	p, err := Infinity().ScalarMult(big.NewInt(5))
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() {
		t.Error("k*infinity should be infinity")
	}

	p, err = Generator().ScalarMult(curve420.Params().L)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() {
		t.Error("l*G should be infinity")
	}
}

func TestMappingRoundTrip(t *testing.T) {
	g := Generator()
	e, err := g.ToEdwards()
	if err != nil {
		t.Fatalf("ToEdwards failed: %v", err)
	}
	if !e.Equal(edwards.Generator()) {
		t.Error("base point does not map to the Edwards base point")
	}
	if !e.IsOnCurve() {
		t.Error("mapped point is off the Edwards curve")
	}

	back, err := FromEdwards(e)
	if err != nil {
		t.Fatalf("FromEdwards failed: %v", err)
	}
	if !back.Equal(g) {
		t.Error("round trip through the Edwards model changed the point")
	}
}

func TestMappingInfinity(t *testing.T) {
	e, err := Infinity().ToEdwards()
	if err != nil {
		t.Fatal(err)
	}
	if !e.IsIdentity() {
		t.Error("infinity should map to the Edwards neutral element")
	}
	back, err := FromEdwards(edwards.Identity())
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsInfinity() {
		t.Error("neutral element should map back to infinity")
	}
}

func TestMappingPoles(t *testing.T) {
	// (0, 0) has order two and sits on the v = 0 pole of the map.
	twoTorsion := Point{U: field.Zero(), V: field.Zero()}
	if !twoTorsion.IsOnCurve() {
		t.Fatal("(0,0) should satisfy the curve equation")
	}
	if _, err := twoTorsion.ToEdwards(); !errors.Is(err, curve420.ErrUndefinedMapping) {
		t.Errorf("err = %v, want ErrUndefinedMapping", err)
	}
}
