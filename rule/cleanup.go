package rule

import (
	"github.com/katalvlaran/ripper/antecedent"
)

// CleanUp removes redundant continuous antecedents, leaving at most one
// <=-direction and one >=-direction antecedent per attribute: the globally
// tightest one, regardless of where in r.Antecedents it occurs. A first
// pass finds, per attribute, the smallest <=-split-point and the largest
// >=-split-point across the whole list; a second pass keeps only the first
// antecedent that attains each of those values, dropping every other
// same-attribute/same-direction antecedent. Discrete antecedents are
// always kept. Relative order of the surviving antecedents is unchanged.
func (r *Rule) CleanUp() {
	minVal := make(map[int]float64)
	maxVal := make(map[int]float64)

	for _, a := range r.Antecedents {
		if a.Kind != antecedent.ContinuousAntecedent {
			continue
		}
		if a.Direction == antecedent.LessOrEqual {
			cur, ok := minVal[a.AttrIndex]
			if !ok || a.SplitPoint < cur {
				minVal[a.AttrIndex] = a.SplitPoint
			}
		} else {
			cur, ok := maxVal[a.AttrIndex]
			if !ok || a.SplitPoint > cur {
				maxVal[a.AttrIndex] = a.SplitPoint
			}
		}
	}

	leDone := make(map[int]bool)
	geDone := make(map[int]bool)

	out := make([]antecedent.Antecedent, 0, len(r.Antecedents))
	for _, a := range r.Antecedents {
		if a.Kind == antecedent.DiscreteAntecedent {
			out = append(out, a)
			continue
		}
		if a.Direction == antecedent.LessOrEqual {
			if !leDone[a.AttrIndex] && a.SplitPoint == minVal[a.AttrIndex] {
				leDone[a.AttrIndex] = true
				out = append(out, a)
			}
		} else {
			if !geDone[a.AttrIndex] && a.SplitPoint == maxVal[a.AttrIndex] {
				geDone[a.AttrIndex] = true
				out = append(out, a)
			}
		}
	}
	r.Antecedents = out
}
