package ripper

import (
	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/rule"
	"github.com/katalvlaran/ripper/rulestats"
)

// optimizeRuleset runs Config.NumOptimizations rounds over ruleset, each
// time walking every position and replacing the rule there with whichever
// of (original, a revised clone, a freshly-grown replacement) has the
// lowest relative description length, ties favoring Original over Revise
// over Replace. After the walk, if positives remain uncovered, more rules
// are appended via the building stage; finally reduceDL trims whatever
// rules no longer earn their keep.
func (l *Learner) optimizeRuleset(classResidual *dataset.Dataset, ruleset []*rule.Rule, expFPRate float64, consequent int) []*rule.Rule {
	current := ruleset
	numAllConditions := classResidual.NumAllConditions()

	for round := 0; round < l.cfg.NumOptimizations; round++ {
		l.cfg.Logger.Printf("ripper: optimization round %d/%d for class %d, %d rules", round+1, l.cfg.NumOptimizations, consequent, len(current))
		residual := classResidual
		revised := make([]*rule.Rule, 0, len(current))

		for i, original := range current {
			growData, pruneData := l.growPruneSplit(residual)

			replace := l.replaceVariant(growData, pruneData, current, i, consequent)
			revise := l.reviseVariant(original, growData, pruneData)

			origStats := rulestats.CountData(residual, current[:i], original)
			replaceStats := rulestats.CountData(residual, current[:i], replace)
			reviseStats := rulestats.CountData(residual, current[:i], revise)

			origDL := rulestats.RelativeDL(original.Size(), numAllConditions, expFPRate,
				origStats.CoveredW, origStats.UncoveredW, origStats.CoveredPosW, origStats.UncoveredPosW, 0)
			reviseDL := rulestats.RelativeDL(revise.Size(), numAllConditions, expFPRate,
				reviseStats.CoveredW, reviseStats.UncoveredW, reviseStats.CoveredPosW, reviseStats.UncoveredPosW, 0)
			replaceDL := rulestats.RelativeDL(replace.Size(), numAllConditions, expFPRate,
				replaceStats.CoveredW, replaceStats.UncoveredW, replaceStats.CoveredPosW, replaceStats.UncoveredPosW, 0)

			best := original
			bestDL := origDL
			if reviseDL < bestDL {
				best = revise
				bestDL = reviseDL
			}
			if replaceDL < bestDL {
				best = replace
			}

			revised = append(revised, best)
			residual = best.NotCoveredBy(residual)
		}

		if classWeight(residual, consequent) > 0 {
			defDL := rulestats.DataDL(expFPRate, 0, residual.SumOfWeights(), 0, classWeight(residual, consequent))
			more, newResidual := l.buildRulesetForClass(residual, expFPRate, consequent, defDL)
			revised = append(revised, more...)
			residual = newResidual
		}

		current = revised
	}

	return rulestats.ReduceDL(classResidual, current, expFPRate, l.cfg.CheckErr)
}

// replaceVariant grows a brand-new empty rule on growData with every row
// covered by a successor rule (position > i) removed first, then prunes it
// with use_whole=true.
func (l *Learner) replaceVariant(growData, pruneData *dataset.Dataset, ruleset []*rule.Rule, position, consequent int) *rule.Rule {
	filteredGrow := rulestats.RemoveCoveredBySuccessors(growData, ruleset, position)
	r := rule.New(consequent)
	_ = r.Grow(filteredGrow, l.cfg.MinNo)
	r.Prune(pruneData, true)
	return r
}

// reviseVariant clones original and continues growing it, but only on the
// subset of growData that original itself already covers (not the subset
// covered by the in-progress revision) — this is the documented intent
// behind the source's growDatainst reference. It is then pruned with
// use_whole=true.
func (l *Learner) reviseVariant(original *rule.Rule, growData, pruneData *dataset.Dataset) *rule.Rule {
	revised := original.Clone()
	coveredByOriginal := original.CoveredBy(growData)
	_ = revised.Grow(coveredByOriginal, l.cfg.MinNo)
	revised.Prune(pruneData, true)
	return revised
}
