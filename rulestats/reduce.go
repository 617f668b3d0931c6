package rulestats

import (
	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/rule"
)

// ReduceDL repeatedly drops whichever single rule's removal decreases the
// ruleset's total description length the most, stopping once no removal
// helps. It returns a new slice; ruleset is left untouched. checkErr is
// accepted for symmetry with the building stage's stopping predicate but
// does not change the description-length arithmetic here.
func ReduceDL(base *dataset.Dataset, ruleset []*rule.Rule, expFPRate float64, checkErr bool) []*rule.Rule {
	current := make([]*rule.Rule, len(ruleset))
	copy(current, ruleset)

	for len(current) > 0 {
		baseline := totalDL(base, current, expFPRate)
		bestDrop := -1
		bestDL := baseline
		for i := range current {
			trial := make([]*rule.Rule, 0, len(current)-1)
			trial = append(trial, current[:i]...)
			trial = append(trial, current[i+1:]...)
			dl := totalDL(base, trial, expFPRate)
			if dl < bestDL {
				bestDL = dl
				bestDrop = i
			}
		}
		if bestDrop == -1 {
			break
		}
		current = append(current[:bestDrop:bestDrop], current[bestDrop+1:]...)
	}

	return current
}

func totalDL(base *dataset.Dataset, ruleset []*rule.Rule, expFPRate float64) float64 {
	rs := New(base)
	total := 0.0
	for _, r := range ruleset {
		rs.PushRule(r)
		st := rs.stats[len(rs.stats)-1]
		total += TheoryDL(r.Size(), rs.numAllConditions) + DataDL(expFPRate, st.CoveredW, st.UncoveredW, st.CoveredPosW, st.UncoveredPosW)
	}

	return total
}
