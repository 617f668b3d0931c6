package ripper

import (
	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/rule"
	"github.com/katalvlaran/ripper/rulestats"
)

// buildRulesetForClass runs the building stage for one class: repeatedly
// stratify-and-split the residual, grow an empty rule on the grow fold,
// prune it (use_whole=false) on the prune fold, and accept it if doing so
// does not trip checkStop. It returns the accepted rules in order and the
// residual left after removing everything they cover.
func (l *Learner) buildRulesetForClass(residual *dataset.Dataset, expFPRate float64, consequent int, defDL float64) ([]*rule.Rule, *dataset.Dataset) {
	var ruleset []*rule.Rule
	minDL := defDL
	dl := defDL
	numAllConditions := residual.NumAllConditions()

	for residual.NumInstances() > 0 {
		growData, pruneData := l.growPruneSplit(residual)

		r := rule.New(consequent)
		if err := r.Grow(growData, l.cfg.MinNo); err != nil {
			break
		}
		r.Prune(pruneData, false)

		rs := rulestats.New(residual)
		rs.PushRule(r)
		st, _ := rs.Stats(0)

		ruleDL := rulestats.TheoryDL(r.Size(), numAllConditions) +
			rulestats.DataDL(expFPRate, st.CoveredW, st.UncoveredW, st.CoveredPosW, st.UncoveredPosW)
		candidateDL := dl + ruleDL

		if checkStop(st, minDL, candidateDL, l.cfg.CheckErr) {
			l.cfg.Logger.Printf("ripper: rule rejected for class %d, size %d, dl %.2f", consequent, r.Size(), candidateDL)
			break
		}

		dl = candidateDL
		if dl < minDL {
			minDL = dl
		}
		l.cfg.Logger.Printf("ripper: rule accepted for class %d, size %d, dl %.2f", consequent, r.Size(), candidateDL)
		ruleset = append(ruleset, r)
		residual = rs.Residual()
	}

	return ruleset, residual
}

// checkStop is the building stage's stopping predicate: stop once the
// running description length has grown too far past the best seen so far,
// once the candidate rule covers no positives, or (when checkErr is set)
// once its covered rows are at least half wrong.
func checkStop(st rulestats.Stats, minDL, dl float64, checkErr bool) bool {
	if dl > minDL+MaxDLSurplus {
		return true
	}
	if st.CoveredPosW <= 0 {
		return true
	}
	if checkErr && st.CoveredW > 0 && st.CoveredNegW/st.CoveredW >= 0.5 {
		return true
	}
	return false
}
