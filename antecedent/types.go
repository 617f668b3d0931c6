package antecedent

import (
	"math"

	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/dataset"
)

// Kind distinguishes the two Antecedent variants.
type Kind int

const (
	// DiscreteAntecedent tests attribute == Target (a domain index).
	DiscreteAntecedent Kind = iota
	// ContinuousAntecedent tests attribute <= SplitPoint or >= SplitPoint,
	// per Direction.
	ContinuousAntecedent
)

// Direction selects which side of SplitPoint a ContinuousAntecedent tests.
type Direction int

const (
	// LessOrEqual tests attribute <= SplitPoint.
	LessOrEqual Direction = 0
	// GreaterOrEqual tests attribute >= SplitPoint.
	GreaterOrEqual Direction = 1
	// unset marks a Direction/Target that SplitData has not yet assigned.
	unset = -1
)

// Antecedent is a single test on one attribute, bound at construction and
// given a value (Target, or SplitPoint+Direction) by SplitData. It also
// carries the scoring fields SplitData computed for that value, which
// Rule.Grow reads to compare candidate antecedents against each other.
type Antecedent struct {
	Kind      Kind
	AttrIndex int

	Target     int       // Discrete only: the domain index this antecedent tests equality against
	SplitPoint float64   // Continuous only
	Direction  Direction // Continuous only

	MaxInfoGain float64
	AccuRate    float64
	Cover       float64
	Accu        float64
}

// NewDiscrete constructs a Discrete antecedent bound to attrIndex, with
// scoring fields at their "unset" zero state (MaxInfoGain=NaN, others 0,
// Target=unset).
func NewDiscrete(schema []attribute.Attribute, attrIndex int) (*Antecedent, error) {
	if attrIndex < 0 || attrIndex >= len(schema) {
		return nil, ErrAttrIndexOutOfRange
	}
	if schema[attrIndex].Kind() != attribute.Discrete {
		return nil, ErrKindMismatch
	}
	return &Antecedent{Kind: DiscreteAntecedent, AttrIndex: attrIndex, Target: unset, MaxInfoGain: math.NaN()}, nil
}

// NewContinuous constructs a Continuous antecedent bound to attrIndex, with
// scoring fields at their "unset" zero state.
func NewContinuous(schema []attribute.Attribute, attrIndex int) (*Antecedent, error) {
	if attrIndex < 0 || attrIndex >= len(schema) {
		return nil, ErrAttrIndexOutOfRange
	}
	if schema[attrIndex].Kind() != attribute.Continuous {
		return nil, ErrKindMismatch
	}
	return &Antecedent{Kind: ContinuousAntecedent, AttrIndex: attrIndex, Direction: unset, MaxInfoGain: math.NaN()}, nil
}

// Covers reports whether row i of data satisfies this antecedent. A
// missing value at AttrIndex never satisfies either variant.
func (a *Antecedent) Covers(data *dataset.Dataset, i int) bool {
	if data.IsMissing(i, a.AttrIndex) {
		return false
	}
	v := data.ValueOfAttr(i, a.AttrIndex)
	switch a.Kind {
	case DiscreteAntecedent:
		return int(v) == a.Target
	case ContinuousAntecedent:
		if a.Direction == LessOrEqual {
			return v <= a.SplitPoint
		}
		return v >= a.SplitPoint
	default:
		return false
	}
}

func log2(x float64) float64 { return math.Log2(x) }
