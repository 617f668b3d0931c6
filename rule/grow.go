package rule

import (
	"math"

	"github.com/katalvlaran/ripper/antecedent"
	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/dataset"
)

// Grow extends r with antecedents via a greedy information-gain
// hill-climb, stopping when growData is exhausted, no attribute remains
// eligible, the running default-accuracy rate reaches 1, or the best
// candidate antecedent's weighted accurate coverage falls below minNo.
//
// Discrete attributes already referenced by an antecedent of r (or one
// appended during this call) are never tried again; continuous attributes
// are always eligible, since a rule may use the same continuous attribute
// on both sides (bounded later by CleanUp).
func (r *Rule) Grow(growData *dataset.Dataset, minNo float64) error {
	if r.Consequent < 0 {
		return ErrNoConsequent
	}

	schema := growData.Schema()
	used := make([]bool, len(schema))
	for _, a := range r.Antecedents {
		if a.Kind == antecedent.DiscreteAntecedent {
			used[a.AttrIndex] = true
		}
	}

	data := growData
	defAccuRate := 0.0

	for {
		if data.NumInstances() == 0 {
			break
		}
		if !anyEligible(schema, used) {
			break
		}
		if defAccuRate >= 1 {
			break
		}

		defAccu := 0.0
		for i := 0; i < data.NumInstances(); i++ {
			if int(data.ClassValue(i)) == r.Consequent {
				defAccu += data.Weight(i)
			}
		}
		defAccuRate = (defAccu + 1) / (data.SumOfWeights() + 1)

		var bestAnt *antecedent.Antecedent
		var bestBags []*dataset.Dataset
		bestGain := math.Inf(-1)

		for a := 1; a < len(schema); a++ {
			isContinuous := schema[a].Kind() == attribute.Continuous
			if !isContinuous && used[a] {
				continue
			}

			var cand *antecedent.Antecedent
			var err error
			if isContinuous {
				cand, err = antecedent.NewContinuous(schema, a)
			} else {
				cand, err = antecedent.NewDiscrete(schema, a)
			}
			if err != nil {
				continue
			}
			bags, ok := cand.SplitData(data, defAccuRate, r.Consequent)
			if !ok {
				continue
			}
			if cand.MaxInfoGain > bestGain {
				bestGain = cand.MaxInfoGain
				bestAnt = cand
				bestBags = bags
			}
		}

		if bestAnt == nil || bestAnt.Accu < minNo {
			break
		}

		r.Antecedents = append(r.Antecedents, *bestAnt)
		if bestAnt.Kind == antecedent.DiscreteAntecedent {
			used[bestAnt.AttrIndex] = true
			data = bestBags[bestAnt.Target]
		} else if bestAnt.Direction == antecedent.LessOrEqual {
			data = bestBags[0]
		} else {
			data = bestBags[1]
		}
		defAccuRate = bestAnt.AccuRate
	}

	return nil
}

func anyEligible(schema []attribute.Attribute, used []bool) bool {
	for a := 1; a < len(schema); a++ {
		if schema[a].Kind() == attribute.Continuous {
			return true
		}
		if !used[a] {
			return true
		}
	}
	return false
}
