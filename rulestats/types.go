package rulestats

import (
	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/rule"
)

// Stats is the weighted six-tuple RuleStats maintains for one rule against
// the residual dataset in force when that rule was pushed. The invariants
// CoveredPosW+CoveredNegW == CoveredW and CoveredW+UncoveredW == (the
// residual's total weight at that position) always hold.
type Stats struct {
	CoveredW      float64
	UncoveredW    float64
	CoveredPosW   float64
	CoveredNegW   float64
	UncoveredPosW float64
	UncoveredNegW float64
}

// FilteredPair is the residual dataset split a pushed rule produced.
type FilteredPair struct {
	Covered   *dataset.Dataset
	Uncovered *dataset.Dataset
}

// RuleStats accumulates per-rule stats and filtered-dataset snapshots as
// rules are pushed in order against a fixed base dataset. It holds no
// reference to any ruleset; the caller is the sole owner of the rules it
// pushes.
type RuleStats struct {
	base             *dataset.Dataset
	numAllConditions float64
	residual         *dataset.Dataset
	filtered         []FilteredPair
	stats            []Stats
}

// New returns a RuleStats bound to base, with an empty rule prefix (residual
// equal to base).
func New(base *dataset.Dataset) *RuleStats {
	return &RuleStats{
		base:             base,
		numAllConditions: base.NumAllConditions(),
		residual:         base,
	}
}

// NumAllConditions returns the precomputed condition count of the base
// dataset, used by TheoryDL.
func (rs *RuleStats) NumAllConditions() float64 { return rs.numAllConditions }

// Len returns the number of rules currently pushed.
func (rs *RuleStats) Len() int { return len(rs.stats) }

// Residual returns the dataset not yet covered by any pushed rule.
func (rs *RuleStats) Residual() *dataset.Dataset { return rs.residual }

// Stats returns the six-tuple computed for rule i.
func (rs *RuleStats) Stats(i int) (Stats, error) {
	if i < 0 || i >= len(rs.stats) {
		return Stats{}, ErrIndexOutOfRange
	}
	return rs.stats[i], nil
}

// GetFiltered returns the covered/uncovered residual split produced when
// rule i was pushed.
func (rs *RuleStats) GetFiltered(i int) (covered, uncovered *dataset.Dataset, err error) {
	if i < 0 || i >= len(rs.filtered) {
		return nil, nil, ErrIndexOutOfRange
	}
	return rs.filtered[i].Covered, rs.filtered[i].Uncovered, nil
}

// PushRule splits the current residual by r.Covers, records the six-tuple
// and filtered pair at the new last position, and advances the residual to
// the uncovered half.
func (rs *RuleStats) PushRule(r *rule.Rule) {
	covered := r.CoveredBy(rs.residual)
	uncovered := r.NotCoveredBy(rs.residual)
	rs.filtered = append(rs.filtered, FilteredPair{Covered: covered, Uncovered: uncovered})
	rs.stats = append(rs.stats, computeStats(covered, uncovered, r.Consequent))
	rs.residual = uncovered
}

// PopRule discards the last pushed rule's stats and filtered pair, and
// restores the residual to what it was before that rule was pushed.
func (rs *RuleStats) PopRule() error {
	n := len(rs.stats)
	if n == 0 {
		return ErrEmptyStack
	}
	rs.filtered = rs.filtered[:n-1]
	rs.stats = rs.stats[:n-1]
	if n-1 == 0 {
		rs.residual = rs.base
	} else {
		rs.residual = rs.filtered[n-2].Uncovered
	}
	return nil
}

func computeStats(covered, uncovered *dataset.Dataset, consequent int) Stats {
	var s Stats
	for i := 0; i < covered.NumInstances(); i++ {
		w := covered.Weight(i)
		s.CoveredW += w
		if int(covered.ClassValue(i)) == consequent {
			s.CoveredPosW += w
		} else {
			s.CoveredNegW += w
		}
	}
	for i := 0; i < uncovered.NumInstances(); i++ {
		w := uncovered.Weight(i)
		s.UncoveredW += w
		if int(uncovered.ClassValue(i)) == consequent {
			s.UncoveredPosW += w
		} else {
			s.UncoveredNegW += w
		}
	}
	return s
}

// CountData recomputes the six-tuple a variant rule would earn at position
// i: it replays freshData through rulesBefore (rules 0..i-1, in order),
// then scores variant against what remains.
func CountData(freshData *dataset.Dataset, rulesBefore []*rule.Rule, variant *rule.Rule) Stats {
	residual := freshData
	for _, r := range rulesBefore {
		residual = r.NotCoveredBy(residual)
	}
	covered := variant.CoveredBy(residual)
	uncovered := variant.NotCoveredBy(residual)
	return computeStats(covered, uncovered, variant.Consequent)
}

// RemoveCoveredBySuccessors returns data with every row covered by any rule
// in ruleset at an index greater than position removed.
func RemoveCoveredBySuccessors(data *dataset.Dataset, ruleset []*rule.Rule, position int) *dataset.Dataset {
	out := data
	for i := position + 1; i < len(ruleset); i++ {
		out = ruleset[i].NotCoveredBy(out)
	}
	return out
}
