// Package audit runs the read-only security battery over the frozen curve
// parameters: algebraic preconditions, embedding-degree search, twist-order
// analysis, and base-point sanity. Every check is independent and the report
// aggregates all findings even when one fails; the purpose is transparency,
// not gatekeeping. Weak-parameter findings are reported, never raised as
// errors.
package audit

import (
	"math/big"

	"github.com/curve420/go-ed420/pkg/curve420"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Config carries the explicit search bounds. The published security report
// used an embedding-degree bound of 1000; that is the default here.
type Config struct {
	// MOVSearchMax bounds the embedding-degree search: k runs over
	// [1, MOVSearchMax].
	MOVSearchMax int

	// TrialDivisionBound caps the twist-order trial division.
	TrialDivisionBound uint64

	// RhoAttempts and RhoMaxIterations budget the randomized factor search
	// applied to the twist order's residual cofactor.
	RhoAttempts      int
	RhoMaxIterations int
}

// DefaultConfig returns the published bounds.
func DefaultConfig() Config {
	return Config{
		MOVSearchMax:       1000,
		TrialDivisionBound: 100000,
		RhoAttempts:        8,
		RhoMaxIterations:   100000,
	}
}

// Report aggregates every finding. Large integers are decimal strings so
// the report serializes without precision loss.
type Report struct {
	FieldBits    int    `yaml:"field_bits"`
	SubgroupBits int    `yaml:"l_bits"`
	Cofactor     string `yaml:"h"`

	// d' = (2-A)/(A+2) must be a non-square for the Edwards addition law
	// to be complete.
	DiscriminantNonSquare bool `yaml:"d_nonsquare"`

	JInvariant string `yaml:"j_invariant"`
	JIsZero    bool   `yaml:"j_is_0"`
	JIs1728    bool   `yaml:"j_is_1728"`

	// MOVEmbeddingDegree is the smallest k <= MOVSearchMax with
	// p^k = 1 (mod l), or nil if none was found. A small value is a
	// security failure finding, not an error.
	MOVEmbeddingDegree *int `yaml:"mov_small_k_found"`
	MOVSearchMax       int  `yaml:"mov_k_search_max"`

	GCDLm1Pm1 string `yaml:"gcd_lm1_pm1"`
	GCDLm1Pp1 string `yaml:"gcd_lm1_pp1"`

	CofactorRelationOK bool `yaml:"cofactor_relation_ok"`
	NotAnomalous       bool `yaml:"not_anomalous_n_ne_p"`

	Twist     TwistReport     `yaml:"twist"`
	BasePoint BasePointReport `yaml:"base_point"`
}

// TwistReport describes the quadratic twist order 2p + 2 - N and how far
// the bounded factorization got. The search is best-effort by construction:
// the report states what was found and how hard it looked, never more.
type TwistReport struct {
	Order   string `yaml:"order"`
	V2      int    `yaml:"v2"`
	OddPart string `yaml:"odd_part"`

	OddPartProbablePrime bool `yaml:"odd_part_probable_prime"`

	TrialBound   uint64   `yaml:"trial_bound"`
	SmallFactors []string `yaml:"small_factors"`

	RhoAttempts      int     `yaml:"rho_attempts"`
	RhoMaxIterations int     `yaml:"rho_max_iterations"`
	RhoFactorFound   *string `yaml:"rho_factor_found"`

	ResidualBits          int  `yaml:"residual_bits"`
	ResidualProbablePrime bool `yaml:"residual_probable_prime"`
}

// BasePointReport confirms the published base points: on-curve in both
// models, exact order l, consistent under the birational maps, and
// non-identity after cofactor clearing.
type BasePointReport struct {
	MontgomeryOnCurve     bool `yaml:"montgomery_on_curve"`
	EdwardsOnCurve        bool `yaml:"edwards_on_curve"`
	MontgomeryOrderL      bool `yaml:"montgomery_order_l"`
	EdwardsOrderL         bool `yaml:"edwards_order_l"`
	ModelsMapConsistently bool `yaml:"models_map_consistently"`
	CofactorClearNonzero  bool `yaml:"cofactor_clear_nonzero"`
}

// Run executes the full battery over the frozen parameters. Checks are
// order-insensitive and never short-circuit.
func Run(cfg Config) *Report {
	params := curve420.Params()

	r := &Report{
		FieldBits:    params.P.BitLen(),
		SubgroupBits: params.L.BitLen(),
		Cofactor:     params.H.String(),
		MOVSearchMax: cfg.MOVSearchMax,
	}

	r.DiscriminantNonSquare = discriminantNonSquare(params)

	j := jInvariant(params)
	r.JInvariant = j.String()
	r.JIsZero = j.Sign() == 0
	r.JIs1728 = j.Cmp(big.NewInt(1728)) == 0

	r.MOVEmbeddingDegree = embeddingDegree(params, cfg.MOVSearchMax)

	lm1 := new(big.Int).Sub(params.L, one)
	r.GCDLm1Pm1 = new(big.Int).GCD(nil, nil, lm1, new(big.Int).Sub(params.P, one)).String()
	r.GCDLm1Pp1 = new(big.Int).GCD(nil, nil, lm1, new(big.Int).Add(params.P, one)).String()

	hl := new(big.Int).Mul(params.H, params.L)
	r.CofactorRelationOK = params.N.Cmp(hl) == 0
	r.NotAnomalous = params.N.Cmp(params.P) != 0

	r.Twist = analyzeTwist(params, cfg)
	r.BasePoint = checkBasePoints(params)

	return r
}
