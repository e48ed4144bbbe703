package audit

import (
	"math/big"

	"github.com/curve420/go-ed420/internal/crypto/edwards"
	"github.com/curve420/go-ed420/internal/crypto/field"
	"github.com/curve420/go-ed420/internal/crypto/montgomery"
	"github.com/curve420/go-ed420/pkg/curve420"
)

// discriminantNonSquare tests that d' = (2-A)/(A+2) mod p is a non-square,
// the precondition for the complete Edwards addition law.
func discriminantNonSquare(params *curve420.Parameters) bool {
	a := field.New(params.A)
	num := field.NewInt(2).Sub(a)
	den, err := a.Add(field.NewInt(2)).Inverse()
	if err != nil {
		return false
	}
	return num.Mul(den).Legendre() == field.NonSquare
}

// jInvariant computes j = 256*(A^2-3)^3 / (A^2-4) mod p. Curves with j = 0
// or j = 1728 have exceptional endomorphism rings and are excluded.
func jInvariant(params *curve420.Parameters) *big.Int {
	a := field.New(params.A)
	a2 := a.Square()
	num := field.NewInt(256).Mul(a2.Sub(field.NewInt(3)).Pow(big.NewInt(3)))
	den, err := a2.Sub(field.NewInt(4)).Inverse()
	if err != nil {
		return new(big.Int)
	}
	return num.Mul(den).BigInt()
}

// embeddingDegree returns the smallest k in [1, max] with p^k = 1 (mod l),
// or nil when none exists in the range. The power is carried incrementally;
// each step is one modular multiplication.
func embeddingDegree(params *curve420.Parameters, max int) *int {
	pk := new(big.Int).Mod(params.P, params.L)
	acc := new(big.Int).Set(pk)
	for k := 1; k <= max; k++ {
		if acc.Cmp(one) == 0 {
			found := k
			return &found
		}
		acc.Mul(acc, pk)
		acc.Mod(acc, params.L)
	}
	return nil
}

func checkBasePoints(params *curve420.Parameters) BasePointReport {
	var rep BasePointReport

	gm := montgomery.Generator()
	ge := edwards.Generator()

	rep.MontgomeryOnCurve = gm.IsOnCurve()
	rep.EdwardsOnCurve = ge.IsOnCurve()

	// Exact order l on the Montgomery side: l*G at infinity, h*G not.
	_, ok := montgomery.Ladder(gm.U, params.L)
	rep.MontgomeryOrderL = !ok
	if hu, hOK := montgomery.Ladder(gm.U, params.H); hOK && !hu.IsZero() {
		rep.CofactorClearNonzero = true
	}

	rep.EdwardsOrderL = ge.InPrimeSubgroup()

	// The two published points must be images of each other.
	mapped, err := gm.ToEdwards()
	back, err2 := montgomery.FromEdwards(ge)
	rep.ModelsMapConsistently = err == nil && err2 == nil &&
		mapped.Equal(ge) && back.Equal(gm)

	return rep
}
