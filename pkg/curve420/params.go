// Package curve420 is the public surface of the go-ed420 library. It holds
// the frozen parameter set of the single supported curve, the parameter
// record format used to exchange parameters with external tooling, and the
// sentinel errors shared by all layers.
//
// The curve is a Montgomery curve v^2 = u^3 + A*u^2 + u over GF(p) with
// p = 2^420 - 335, together with its twisted Edwards model
// a*x^2 + y^2 = 1 + d*x^2*y^2 where a = A + 2 and d = A - 2.
package curve420

import (
	"io"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EncodedLen is the fixed width of every encoded field element and point:
// ceil(420 / 8) = 53 bytes, little-endian.
const EncodedLen = 53

// FieldBits is the bit length of the field prime p.
const FieldBits = 420

// Parameters is the immutable, process-wide frozen parameter record. Every
// component holds a read-only reference; none of the fields may be mutated
// after construction.
type Parameters struct {
	P        *big.Int // field prime, 2^420 - 335
	A        *big.Int // Montgomery coefficient (B = 1)
	EdwardsA *big.Int // Edwards a = A + 2
	EdwardsD *big.Int // Edwards d = A - 2
	N        *big.Int // curve group order (supplied by external point counting)
	H        *big.Int // cofactor
	L        *big.Int // prime subgroup order, N = H * L

	// Montgomery base point (u, v) and its Edwards image (x, y). The two
	// points map to each other under the birational maps; the audit
	// pipeline verifies this rather than assuming it.
	BaseU, BaseV *big.Int
	BaseX, BaseY *big.Int
}

var frozen = &Parameters{
	P:        mustInt("2707685248164858261307045101702230179137145581421695874189921465443966120903931272499975005961073806735733604454495675614232241"),
	A:        mustInt("763975519699500577645754547835125169481986463482154078046572648671788968290548038674290307302429817161505744408446033521089602"),
	EdwardsA: mustInt("763975519699500577645754547835125169481986463482154078046572648671788968290548038674290307302429817161505744408446033521089604"),
	EdwardsD: mustInt("763975519699500577645754547835125169481986463482154078046572648671788968290548038674290307302429817161505744408446033521089600"),
	N:        mustInt("2707685248164858261307045101702230179137145581421695874189921468012068621392213242249318148989948315540827938002844778973749752"),
	H:        big.NewInt(8),
	L:        mustInt("338460656020607282663380637712778772392143197677711984273740183501508577674026655281164768623743539442603492250355597371718719"),

	BaseU: mustInt("1887066872174968132246224128199266266323489104588603923691363826518154582291788366769852665419756146257203683605002692187211605"),
	BaseV: mustInt("1615823937666138581405149982946858036615132278772287171232550469704961695279457501113588538572409066758954677368118289169060562"),
	BaseX: mustInt("2554519045303036994902077297242990796196199161457630080356703041833906288977089421513471756737913123939108844302244613830350009"),
	BaseY: mustInt("1554004282195909523747673681974014268960308454695342458183393593582942692590987497223833263666951454840260505456918987028153736"),
}

// Params returns the frozen parameter set. The returned value is shared and
// must be treated as read-only.
func Params() *Parameters {
	return frozen
}

func mustInt(dec string) *big.Int {
	n, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("curve420: bad frozen parameter literal")
	}
	return n
}

// ParameterRecord is the external-interface form of Parameters: every integer
// is a decimal string so the record survives arbitrary serialization without
// precision loss. This is the format consumed from and produced for external
// collaborators (point-counting output, primality certification input).
type ParameterRecord struct {
	P        string `yaml:"p"`
	A        string `yaml:"A"`
	EdwardsA string `yaml:"a"`
	EdwardsD string `yaml:"d"`
	N        string `yaml:"N"`
	H        string `yaml:"h"`
	L        string `yaml:"l"`
	BaseU    string `yaml:"base_u"`
	BaseV    string `yaml:"base_v"`
	BaseX    string `yaml:"base_x"`
	BaseY    string `yaml:"base_y"`
}

// Record converts p into its decimal-string form.
func (p *Parameters) Record() *ParameterRecord {
	return &ParameterRecord{
		P:        p.P.String(),
		A:        p.A.String(),
		EdwardsA: p.EdwardsA.String(),
		EdwardsD: p.EdwardsD.String(),
		N:        p.N.String(),
		H:        p.H.String(),
		L:        p.L.String(),
		BaseU:    p.BaseU.String(),
		BaseV:    p.BaseV.String(),
		BaseX:    p.BaseX.String(),
		BaseY:    p.BaseY.String(),
	}
}

// Parameters parses the decimal-string record into big integers. It fails on
// missing or malformed fields; algebraic consistency (N = h*l, base points on
// curve, models mapping to each other) is established by the audit pipeline,
// not assumed here.
func (r *ParameterRecord) Parameters() (*Parameters, error) {
	p := &Parameters{}
	for _, f := range []struct {
		name string
		dec  string
		dst  **big.Int
	}{
		{"p", r.P, &p.P},
		{"A", r.A, &p.A},
		{"a", r.EdwardsA, &p.EdwardsA},
		{"d", r.EdwardsD, &p.EdwardsD},
		{"N", r.N, &p.N},
		{"h", r.H, &p.H},
		{"l", r.L, &p.L},
		{"base_u", r.BaseU, &p.BaseU},
		{"base_v", r.BaseV, &p.BaseV},
		{"base_x", r.BaseX, &p.BaseX},
		{"base_y", r.BaseY, &p.BaseY},
	} {
		n, ok := new(big.Int).SetString(f.dec, 10)
		if !ok {
			return nil, errors.Errorf("curve420: parameter %q is not a decimal integer", f.name)
		}
		*f.dst = n
	}
	return p, nil
}

// LoadParameters reads a YAML parameter record.
func LoadParameters(r io.Reader) (*Parameters, error) {
	var rec ParameterRecord
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "curve420: decode parameter record")
	}
	return rec.Parameters()
}

// LoadParametersFile reads a YAML parameter record from path.
func LoadParametersFile(path string) (*Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "curve420: open parameter file")
	}
	defer f.Close()
	return LoadParameters(f)
}
