package rule

import (
	"github.com/katalvlaran/ripper/antecedent"
	"github.com/katalvlaran/ripper/dataset"
)

// Rule is a conjunction of antecedents predicting Consequent. An empty
// Antecedents list is the "default rule": it covers every row.
type Rule struct {
	Consequent  int
	Antecedents []antecedent.Antecedent
}

// New returns an empty rule (no antecedents yet) predicting consequent.
func New(consequent int) *Rule {
	return &Rule{Consequent: consequent}
}

// Clone returns a deep copy of r; mutating the clone's Antecedents never
// affects r.
func (r *Rule) Clone() *Rule {
	out := &Rule{Consequent: r.Consequent}
	out.Antecedents = make([]antecedent.Antecedent, len(r.Antecedents))
	copy(out.Antecedents, r.Antecedents)
	return out
}

// Covers reports whether row i of data satisfies every antecedent of r. An
// empty antecedent list (the default rule) covers everything.
func (r *Rule) Covers(data *dataset.Dataset, i int) bool {
	for j := range r.Antecedents {
		if !r.Antecedents[j].Covers(data, i) {
			return false
		}
	}
	return true
}

// Size returns the number of antecedents (the rule's length).
func (r *Rule) Size() int { return len(r.Antecedents) }

// CoveredBy returns a new Dataset with only the rows of data this rule
// covers.
func (r *Rule) CoveredBy(data *dataset.Dataset) *dataset.Dataset {
	return data.Filter(func(i int) bool { return r.Covers(data, i) })
}

// NotCoveredBy returns a new Dataset with only the rows of data this rule
// does not cover.
func (r *Rule) NotCoveredBy(data *dataset.Dataset) *dataset.Dataset {
	return data.Filter(func(i int) bool { return !r.Covers(data, i) })
}
