// Package montgomery implements the Montgomery model of the curve,
// v^2 = u^3 + A*u^2 + u, with x-only scalar multiplication and the
// birational maps to and from the Edwards model.
package montgomery

import (
	"math/big"

	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/pkg/curve420"
)

var coeffA = field.New(curve420.Params().A)

// Point is an affine point (u, v) or the point at infinity.
type Point struct {
	U, V field.Element

	inf bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// Generator returns the frozen Montgomery base point.
func Generator() Point {
	p := curve420.Params()
	return Point{U: field.New(p.BaseU), V: field.New(p.BaseV)}
}

// FromU lifts a u-coordinate to an affine point, choosing the even-parity
// root for v. Fails with ErrNoSquareRoot when u is not on the curve.
func FromU(u field.Element) (Point, error) {
	v, err := rhs(u).Sqrt()
	if err != nil {
		return Point{}, err
	}
	if v.Parity() == 1 {
		v = v.Neg()
	}
	return Point{U: u, V: v}, nil
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// IsOnCurve checks the Montgomery equation. The point at infinity counts as
// on the curve.
func (p Point) IsOnCurve() bool {
	if p.inf {
		return true
	}
	return p.V.Square().Equal(rhs(p.U))
}

// Equal reports whether two points are identical.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.U.Equal(q.U) && p.V.Equal(q.V)
}

// ScalarMult returns k*p via the x-only ladder. The ladder loses the sign of
// v, so the result carries the even-parity root; both signs generate the
// same subgroup.
func (p Point) ScalarMult(k *big.Int) (Point, error) {
	if p.inf {
		return Infinity(), nil
	}
	u, ok := Ladder(p.U, k)
	if !ok {
		return Infinity(), nil
	}
	return FromU(u)
}

// rhs evaluates u^3 + A*u^2 + u.
func rhs(u field.Element) field.Element {
	u2 := u.Square()
	return u2.Mul(u).Add(coeffA.Mul(u2)).Add(u)
}

// projPoint is the (X : Z) representation used inside the ladder.
type projPoint struct {
	x, z field.Element
}

// Ladder computes the u-coordinate of k * (u, v) for either lift of u. It
// processes a fixed window of at least 420 bits from most to least
// significant with a conditional swap keyed on each bit, so for canonical
// scalars the sequence of field operations does not depend on the value of
// k. Wider scalars, such as the full group order N, extend the window to
// cover their top bits. The second return is false when the result is the
// point at infinity.
func Ladder(u field.Element, k *big.Int) (field.Element, bool) {
	p0 := projPoint{x: field.One(), z: field.Zero()} // infinity
	p1 := projPoint{x: u, z: field.One()}

	bits := curve420.FieldBits
	if n := k.BitLen(); n > bits {
		bits = n
	}
	for i := bits - 1; i >= 0; i-- {
		bit := k.Bit(i) == 1
		cswap(&p0, &p1, bit)
		p0, p1 = ladderStep(p0, p1, u)
		cswap(&p0, &p1, bit)
	}

	if p0.z.IsZero() {
		return field.Element{}, false
	}
	zInv, _ := p0.z.Inverse()
	return p0.x.Mul(zInv), true
}

func cswap(p0, p1 *projPoint, swap bool) {
	if swap {
		*p0, *p1 = *p1, *p0
	}
}

// ladderStep returns (2*p0, p0 + p1) by differential doubling and addition,
// with p1 - p0 fixed at the base u-coordinate.
func ladderStep(p0, p1 projPoint, baseU field.Element) (projPoint, projPoint) {
	v0 := p0.x.Add(p0.z)
	v1 := p0.x.Sub(p0.z)
	v2 := p1.x.Add(p1.z)
	v3 := p1.x.Sub(p1.z)

	v4 := v0.Mul(v3)
	v5 := v1.Mul(v2)

	sum := v4.Add(v5)
	diff := v4.Sub(v5)

	added := projPoint{
		x: sum.Square(),
		z: baseU.Mul(diff.Square()),
	}

	x0sq := p0.x.Square()
	z0sq := p0.z.Square()
	fourXZ := v0.Square().Sub(v1.Square())

	// Doubling is parameterized directly by A rather than a24 = (A+2)/4.
	t := x0sq.Add(coeffA.Mul(p0.x).Mul(p0.z)).Add(z0sq)
	doubled := projPoint{
		x: x0sq.Sub(z0sq).Square(),
		z: fourXZ.Mul(t),
	}

	return doubled, added
}
