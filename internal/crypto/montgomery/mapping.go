package montgomery

import (
	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// ToEdwards maps (u, v) to the Edwards model via x = u/v, y = (u-1)/(u+1).
// The point at infinity maps to the Edwards neutral element. The map is
// undefined at v = 0 or u = -1; those are the low-order boundary points the
// protocols never exercise.
func (p Point) ToEdwards() (edwards.Point, error) {
	if p.inf {
		return edwards.Identity(), nil
	}
	vInv, err := p.V.Inverse()
	if err != nil {
		return edwards.Point{}, curve420.ErrUndefinedMapping
	}
	den, err := p.U.Add(field.One()).Inverse()
	if err != nil {
		return edwards.Point{}, curve420.ErrUndefinedMapping
	}
	return edwards.Point{
		X: p.U.Mul(vInv),
		Y: p.U.Sub(field.One()).Mul(den),
	}, nil
}

// FromEdwards is the inverse map, u = (1+y)/(1-y), v = u/x. The Edwards
// neutral element maps to the point at infinity. The map is undefined at
// y = 1 or x = 0.
func FromEdwards(e edwards.Point) (Point, error) {
	if e.IsIdentity() {
		return Infinity(), nil
	}
	den, err := field.One().Sub(e.Y).Inverse()
	if err != nil {
		return Point{}, curve420.ErrUndefinedMapping
	}
	xInv, err := e.X.Inverse()
	if err != nil {
		return Point{}, curve420.ErrUndefinedMapping
	}
	u := field.One().Add(e.Y).Mul(den)
	return Point{U: u, V: u.Mul(xInv)}, nil
}
