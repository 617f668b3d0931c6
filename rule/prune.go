package rule

import "github.com/katalvlaran/ripper/dataset"

// Prune truncates r's antecedent list to the prefix with the best
// "worth rate" against pruneData, computed in one of two modes:
//
//	useWhole=false: worthRate[x] = (worthValue[x]+1) / (coverage[x]+2)
//	useWhole=true:  worthRate[x] = (worthValue[x]+tn[x]) / sumOfWeights
//
// where coverage[x]/worthValue[x] are the weight covered, and weight
// covered with a matching class, by the first x+1 antecedents; tn[x] is
// the weight of rows the first x+1 antecedents do NOT cover whose class
// is not the consequent.
//
// The prefix length is chosen as argmax of worthRate[x] among positions
// that beat max_value = (defAccu+1)/(sumOfWeights+2), where defAccu is
// the weighted count of pruneData rows matching the consequent with no
// antecedents applied. Ties (equal worthRate) keep the shorter prefix,
// since a later, equal-scoring candidate never overwrites an earlier best.
func (r *Rule) Prune(pruneData *dataset.Dataset, useWhole bool) {
	size := len(r.Antecedents)
	if size == 0 {
		return
	}

	n := pruneData.NumInstances()
	// failAt[i] = index of the first antecedent row i fails, or size if it
	// satisfies every antecedent.
	failAt := make([]int, n)
	for i := 0; i < n; i++ {
		failAt[i] = size
		for x := 0; x < size; x++ {
			if !r.Antecedents[x].Covers(pruneData, i) {
				failAt[i] = x
				break
			}
		}
	}

	sumWeights := 0.0
	defAccu := 0.0
	for i := 0; i < n; i++ {
		w := pruneData.Weight(i)
		sumWeights += w
		if int(pruneData.ClassValue(i)) == r.Consequent {
			defAccu += w
		}
	}

	coverage := make([]float64, size)
	worthValue := make([]float64, size)
	tn := make([]float64, size)
	for x := 0; x < size; x++ {
		for i := 0; i < n; i++ {
			w := pruneData.Weight(i)
			isMatch := int(pruneData.ClassValue(i)) == r.Consequent
			if failAt[i] > x { // covered by antecedents[0..x]
				coverage[x] += w
				if isMatch {
					worthValue[x] += w
				}
			} else if useWhole && !isMatch { // not covered, negative class
				tn[x] += w
			}
		}
	}

	worthRate := make([]float64, size)
	for x := 0; x < size; x++ {
		if useWhole {
			worthRate[x] = (worthValue[x] + tn[x]) / sumWeights
		} else {
			worthRate[x] = (worthValue[x] + 1) / (coverage[x] + 2)
		}
	}

	maxValue := (defAccu + 1) / (sumWeights + 2)
	bestRate := maxValue
	maxIndex := -1
	for x := 0; x < size; x++ {
		if worthRate[x] > bestRate {
			bestRate = worthRate[x]
			maxIndex = x
		}
	}

	r.Antecedents = r.Antecedents[:maxIndex+1]
}
