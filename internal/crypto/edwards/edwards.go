// Package edwards implements the twisted Edwards model of the curve,
// a*x^2 + y^2 = 1 + d*x^2*y^2 with a = A + 2 and d = A - 2.
//
// The addition law is the complete one: because d is a non-square in GF(p)
// (established by the audit pipeline) the denominators 1 +/- d*x1*x2*y1*y2
// never vanish for curve points, so neither the identity nor doubling needs
// a special-case branch.
package edwards

import (
	"math/big"

	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/pkg/curve420"
)

var (
	a = field.New(curve420.Params().EdwardsA)
	d = field.New(curve420.Params().EdwardsD)
)

// Point is an affine point on the Edwards model. The neutral element is
// (0, 1).
type Point struct {
	X, Y field.Element
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{X: field.Zero(), Y: field.One()}
}

// Generator returns the frozen Edwards base point.
func Generator() Point {
	p := curve420.Params()
	return Point{X: field.New(p.BaseX), Y: field.New(p.BaseY)}
}

// IsIdentity reports whether p is the neutral element.
func (p Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.IsOne()
}

// IsOnCurve checks the Edwards equation a*x^2 + y^2 = 1 + d*x^2*y^2.
func (p Point) IsOnCurve() bool {
	x2 := p.X.Square()
	y2 := p.Y.Square()
	lhs := a.Mul(x2).Add(y2)
	rhs := field.One().Add(d.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

// Equal reports whether two points have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Add returns p + q using the complete addition law.
func (p Point) Add(q Point) Point {
	x1y2 := p.X.Mul(q.Y)
	y1x2 := p.Y.Mul(q.X)
	x1x2 := p.X.Mul(q.X)
	y1y2 := p.Y.Mul(q.Y)

	t := d.Mul(x1x2).Mul(y1y2)

	x3 := x1y2.Add(y1x2).Mul(inv(field.One().Add(t)))
	y3 := y1y2.Sub(a.Mul(x1x2)).Mul(inv(field.One().Sub(t)))
	return Point{X: x3, Y: y3}
}

// Double returns 2*p.
func (p Point) Double() Point {
	return p.Add(p)
}

// Neg returns -p = (-x, y).
func (p Point) Neg() Point {
	return Point{X: p.X.Neg(), Y: p.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// ScalarMult returns k*p by double-and-add over the complete law. k must be
// non-negative; callers pass canonical scalars or the small audit constants.
func (p Point) ScalarMult(k *big.Int) Point {
	res := Identity()
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			res = res.Add(addend)
		}
		addend = addend.Double()
	}
	return res
}

// InPrimeSubgroup reports whether p is a non-identity point of exact order l.
func (p Point) InPrimeSubgroup() bool {
	if p.IsIdentity() {
		return false
	}
	return p.ScalarMult(curve420.Params().L).IsIdentity()
}

// inv is the field inverse specialized for addition denominators, which are
// non-zero for all pairs of curve points.
func inv(e field.Element) field.Element {
	r, _ := e.Inverse()
	return r
}
