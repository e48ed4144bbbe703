package audit

import (
	"math/big"

	"github.com/curve420/go-ed420/pkg/curve420"
)

// probablePrimeRounds is the Miller-Rabin round count; results are
// probabilistic and reported as such.
const probablePrimeRounds = 40

// analyzeTwist studies the quadratic twist order N_twist = 2p + 2 - N: its
// 2-adic valuation, the odd part, and a bounded factorization of the odd
// part by trial division followed by randomized rho attempts.
func analyzeTwist(params *curve420.Parameters, cfg Config) TwistReport {
	order := new(big.Int).Lsh(params.P, 1)
	order.Add(order, two)
	order.Sub(order, params.N)

	odd := new(big.Int).Set(order)
	v2 := 0
	for odd.Bit(0) == 0 {
		odd.Rsh(odd, 1)
		v2++
	}

	rep := TwistReport{
		Order:                order.String(),
		V2:                   v2,
		OddPart:              odd.String(),
		OddPartProbablePrime: odd.ProbablyPrime(probablePrimeRounds),
		TrialBound:           cfg.TrialDivisionBound,
		RhoAttempts:          cfg.RhoAttempts,
		RhoMaxIterations:     cfg.RhoMaxIterations,
	}

	// Strategies compose sequentially: peel everything trial division can
	// reach, then spend the randomized budget on what remains.
	residual := new(big.Int).Set(odd)
	trial := TrialDivision{Bound: cfg.TrialDivisionBound}
	for residual.Cmp(one) > 0 {
		f, ok := trial.FindFactor(residual)
		if !ok {
			break
		}
		rep.SmallFactors = append(rep.SmallFactors, f.String())
		residual.Div(residual, f)
	}

	if residual.Cmp(one) > 0 && !residual.ProbablyPrime(probablePrimeRounds) {
		rho := PollardRho{Attempts: cfg.RhoAttempts, MaxIterations: cfg.RhoMaxIterations}
		if f, ok := rho.FindFactor(residual); ok {
			s := f.String()
			rep.RhoFactorFound = &s
			residual.Div(residual, f)
		}
	}

	rep.ResidualBits = residual.BitLen()
	rep.ResidualProbablePrime = residual.ProbablyPrime(probablePrimeRounds)
	return rep
}
