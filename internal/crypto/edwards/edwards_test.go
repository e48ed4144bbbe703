package edwards

import (
	"math/big"
	"testing"

	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// Multiples of the base point, computed independently with the affine
// complete addition law.
var (
	twoGX = fieldFromDec("871918645428067090974714604427172348467727133660544735282531112662908865084997139862785797988005772304800653071863405415019909")
	twoGY = fieldFromDec("1039477804522389235277449023984638409408685680778159098175968843276777195246526075114890004636322458301444566987562450015223784")

	oneTwoThreeGX = fieldFromDec("562610636582100370895051067319771057429614977948468244327221078619015417065802343747378090600083013664645695702714829874326408")
	oneTwoThreeGY = fieldFromDec("48857530934738225356228838861664610127832264595859238577403014540079170628206449935412018555559193463247684582753913962007046")
)

func fieldFromDec(dec string) field.Element {
	n, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bad test literal")
	}
	return field.New(n)
}

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	if !g.IsOnCurve() {
		t.Fatal("generator is not on the curve")
	}
	if !g.InPrimeSubgroup() {
		t.Fatal("generator is not in the prime subgroup")
	}
}

func TestIdentityLaws(t *testing.T) {
	g := Generator()
	id := Identity()

	if !id.IsOnCurve() {
		t.Error("identity should satisfy the curve equation")
	}
	if !g.Add(id).Equal(g) {
		t.Error("g + 0 != g")
	}
	if !id.Add(g).Equal(g) {
		t.Error("0 + g != g")
	}
	if !g.Add(g.Neg()).IsIdentity() {
		t.Error("g + (-g) != 0")
	}
	if !g.Sub(g).IsIdentity() {
		t.Error("g - g != 0")
	}
}

func TestDoubleMatchesFixture(t *testing.T) {
	d := Generator().Double()
	if !d.X.Equal(twoGX) || !d.Y.Equal(twoGY) {
		t.Errorf("2*G = (%s, %s), fixture mismatch", d.X, d.Y)
	}
	if !d.Equal(Generator().Add(Generator())) {
		t.Error("Double and Add disagree")
	}
}

func TestScalarMultMatchesFixture(t *testing.T) {
	p := Generator().ScalarMult(big.NewInt(123))
	if !p.X.Equal(oneTwoThreeGX) || !p.Y.Equal(oneTwoThreeGY) {
		t.Errorf("123*G = (%s, %s), fixture mismatch", p.X, p.Y)
	}
	if !p.IsOnCurve() {
		t.Error("123*G is off the curve")
	}
}

func TestScalarMultEdgeCases(t *testing.T) {
	g := Generator()
	if !g.ScalarMult(big.NewInt(0)).IsIdentity() {
		t.Error("0*G != identity")
	}
	if !g.ScalarMult(big.NewInt(1)).Equal(g) {
		t.Error("1*G != G")
	}
	l := curve420.Params().L
	if !g.ScalarMult(l).IsIdentity() {
		t.Error("l*G != identity")
	}
	lm1 := new(big.Int).Sub(l, big.NewInt(1))
	if !g.ScalarMult(lm1).Equal(g.Neg()) {
		t.Error("(l-1)*G != -G")
	}
}

func TestScalarMultDistributes(t *testing.T) {
	g := Generator()
	l := curve420.Params().L
	k1 := big.NewInt(987654321)
	k2 := big.NewInt(123456789)

	sum := new(big.Int).Add(k1, k2)
	sum.Mod(sum, l)

	lhs := g.ScalarMult(sum)
	rhs := g.ScalarMult(k1).Add(g.ScalarMult(k2))
	if !lhs.Equal(rhs) {
		t.Error("(k1+k2)*G != k1*G + k2*G")
	}
}

func TestAddCommutesAndAssociates(t *testing.T) {
	p := Generator().ScalarMult(big.NewInt(7))
	q := Generator().ScalarMult(big.NewInt(11))
	r := Generator().ScalarMult(big.NewInt(13))

	if !p.Add(q).Equal(q.Add(p)) {
		t.Error("addition is not commutative")
	}
	if !p.Add(q).Add(r).Equal(p.Add(q.Add(r))) {
		t.Error("addition is not associative")
	}
}

func TestInPrimeSubgroup(t *testing.T) {
	if Identity().InPrimeSubgroup() {
		t.Error("identity must not count as a subgroup generator")
	}
	if !Generator().ScalarMult(big.NewInt(123)).InPrimeSubgroup() {
		t.Error("123*G should be in the prime subgroup")
	}
}
