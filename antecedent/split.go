package antecedent

import "github.com/katalvlaran/ripper/dataset"

// SplitData scores this antecedent's attribute against data and a target
// class, recording the winning test's statistics on the receiver.
//
// Discrete: data is partitioned into one bag per domain value (rows
// missing the attribute are dropped). Each bag's info gain is
// classMatchWeight*(log2(p/t) - log2(defAccuRate)) with p = classMatch+1,
// t = bagWeight+1; the highest-gain bag (first-seen-wins on ties) sets
// Target/MaxInfoGain/AccuRate/Cover/Accu. The bags are always returned,
// one per domain value.
//
// Continuous: data is sorted ascending by the attribute (missing last).
// Every position between two distinct consecutive values is a candidate
// split, scored in both directions using the midpoint between the two
// values as the split point (so a LessOrEqual and a GreaterOrEqual winner
// at the same position store the same SplitPoint and still partition the
// data identically to comparing against the neighboring raw value); the
// winner sets Direction/SplitPoint and the four scoring fields. Returns
// (nil, false) if every row is missing the attribute; otherwise returns
// the two partitions (<=SplitPoint, >SplitPoint), with rows missing the
// attribute dropped from both.
func (a *Antecedent) SplitData(data *dataset.Dataset, defAccuRate float64, targetClass int) ([]*dataset.Dataset, bool) {
	if a.Kind == DiscreteAntecedent {
		return a.splitDiscrete(data, defAccuRate, targetClass), true
	}
	return a.splitContinuous(data, defAccuRate, targetClass)
}

func (a *Antecedent) splitDiscrete(data *dataset.Dataset, defAccuRate float64, targetClass int) []*dataset.Dataset {
	bags := data.Bucket(a.AttrIndex)

	bestGain := negInfF
	bestIdx := -1
	var bestAccuRate, bestCover, bestAccu float64

	for idx, bag := range bags {
		var bagW, matchW float64
		for i := 0; i < bag.NumInstances(); i++ {
			w := bag.Weight(i)
			bagW += w
			if int(bag.ClassValue(i)) == targetClass {
				matchW += w
			}
		}
		p := matchW + 1
		t := bagW + 1
		infoGain := matchW * (log2(p/t) - log2(defAccuRate))
		if infoGain > bestGain {
			bestGain = infoGain
			bestIdx = idx
			bestAccuRate = p / t
			bestCover = bagW
			bestAccu = matchW
		}
	}

	if bestIdx >= 0 {
		a.Target = bestIdx
		a.MaxInfoGain = bestGain
		a.AccuRate = bestAccuRate
		a.Cover = bestCover
		a.Accu = bestAccu
	}
	return bags
}

func (a *Antecedent) splitContinuous(data *dataset.Dataset, defAccuRate float64, targetClass int) ([]*dataset.Dataset, bool) {
	sorted := data.SortByAttr(a.AttrIndex)
	total := 0
	for total < sorted.NumInstances() && !sorted.IsMissing(total, a.AttrIndex) {
		total++
	}
	if total == 0 {
		return nil, false
	}

	xs := make([]float64, total)
	ws := make([]float64, total)
	matches := make([]float64, total)
	for i := 0; i < total; i++ {
		xs[i] = sorted.ValueOfAttr(i, a.AttrIndex)
		ws[i] = sorted.Weight(i)
		if int(sorted.ClassValue(i)) == targetClass {
			matches[i] = ws[i]
		}
	}

	// prefix[s] = total weight / matched weight over xs[0:s]
	prefixW := make([]float64, total+1)
	prefixM := make([]float64, total+1)
	for i := 0; i < total; i++ {
		prefixW[i+1] = prefixW[i] + ws[i]
		prefixM[i+1] = prefixM[i] + matches[i]
	}
	totalW := prefixW[total]
	totalM := prefixM[total]

	bestGain := negInfF
	bestSplit := 0.0
	bestDir := LessOrEqual
	var bestAccuRate, bestCover, bestAccu float64
	found := false

	for s := 1; s < total; s++ {
		if xs[s] <= xs[s-1] {
			continue // never split within equal values
		}
		// The midpoint between the two distinct values straddling this
		// split position: v<=mid and v>=mid partition identically to
		// v<=xs[s-1] and v>=xs[s], so the same stored value works for
		// either Direction without the bag-building filter below needing
		// to special-case which one won.
		mid := (xs[s-1] + xs[s]) / 2

		// direction 0: <= mid (the left side, indices [0,s))
		coverL, accuL := prefixW[s], prefixM[s]
		rateL := (accuL + 1) / (coverL + 1)
		gainL := accuL * (log2(rateL) - log2(defAccuRate))
		if gainL > bestGain {
			bestGain, bestSplit, bestDir = gainL, mid, LessOrEqual
			bestAccuRate, bestCover, bestAccu = rateL, coverL, accuL
			found = true
		}

		// direction 1: >= mid (the right side, indices [s,total))
		coverR, accuR := totalW-prefixW[s], totalM-prefixM[s]
		rateR := (accuR + 1) / (coverR + 1)
		gainR := accuR * (log2(rateR) - log2(defAccuRate))
		if gainR > bestGain {
			bestGain, bestSplit, bestDir = gainR, mid, GreaterOrEqual
			bestAccuRate, bestCover, bestAccu = rateR, coverR, accuR
			found = true
		}
	}

	threshold := bestSplit
	if found {
		a.SplitPoint = bestSplit
		a.Direction = bestDir
		a.MaxInfoGain = bestGain
		a.AccuRate = bestAccuRate
		a.Cover = bestCover
		a.Accu = bestAccu
	} else {
		// No two distinct values to split between: every non-missing row
		// falls on the <= side of its own maximum value.
		threshold = xs[total-1]
	}

	le := sorted.Filter(func(i int) bool {
		return !sorted.IsMissing(i, a.AttrIndex) && sorted.ValueOfAttr(i, a.AttrIndex) <= threshold
	})
	gt := sorted.Filter(func(i int) bool {
		return !sorted.IsMissing(i, a.AttrIndex) && sorted.ValueOfAttr(i, a.AttrIndex) > threshold
	})
	return []*dataset.Dataset{le, gt}, true
}

const negInfF = -1e308
