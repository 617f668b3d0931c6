package dataset

import (
	"sort"

	"github.com/katalvlaran/ripper/attribute"
)

// ResortClassesByCount renumbers the class attribute's domain indices in
// ascending order of weighted count (ties broken by original index), and
// rewrites every row's class value to the new numbering. It returns the
// per-new-index weighted count, so index numClasses-1 (the new highest
// index) is always the most frequent class.
func (d *Dataset) ResortClassesByCount() []float64 {
	numClasses := d.NumClasses()
	counts := make([]float64, numClasses)
	for i := range d.rows {
		if d.IsMissing(i, 0) {
			continue
		}
		counts[int(d.rows[i].Values[0])] += d.rows[i].Weight
	}

	order := make([]int, numClasses)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] < counts[order[b]]
	})

	// oldToNew[old class index] = new class index
	oldToNew := make([]int, numClasses)
	newCounts := make([]float64, numClasses)
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = newIdx
		newCounts[newIdx] = counts[oldIdx]
	}

	domain, _ := d.schema[0].Domain()
	newDomain := make([]string, numClasses)
	for oldIdx, label := range domain {
		newDomain[oldToNew[oldIdx]] = label
	}
	newAttr, _ := attribute.NewDiscrete(d.schema[0].Name(), newDomain)
	d.schema[0] = newAttr

	for i := range d.rows {
		if d.IsMissing(i, 0) {
			continue
		}
		d.rows[i].Values[0] = float64(oldToNew[int(d.rows[i].Values[0])])
	}

	return newCounts
}

// RemoveUselessInsts returns a new Dataset with every row whose class value
// is missing dropped.
func (d *Dataset) RemoveUselessInsts() *Dataset {
	return d.Filter(func(i int) bool { return !d.IsMissing(i, 0) })
}

// NumAllConditions returns the total number of distinguishable single-
// attribute tests available over the schema: the domain size for each
// Discrete attribute, plus (distinct non-missing numeric values - 1) for
// each Continuous attribute. Class attribute (index 0) is excluded.
func (d *Dataset) NumAllConditions() float64 {
	var total float64
	for a := 1; a < len(d.schema); a++ {
		if d.schema[a].Kind() == attribute.Discrete {
			total += float64(d.schema[a].NumValues())
			continue
		}
		total += float64(d.distinctNumericCount(a) - 1)
	}
	if total < 0 {
		total = 0
	}
	return total
}

// distinctNumericCount returns the number of distinct non-missing values
// attribute a takes across d's rows, via sort-then-count-strict-increases.
func (d *Dataset) distinctNumericCount(a int) int {
	vals := make([]float64, 0, len(d.rows))
	for i := range d.rows {
		if !d.IsMissing(i, a) {
			vals = append(vals, d.rows[i].Values[a])
		}
	}
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	distinct := 1
	for i := 1; i < len(vals); i++ {
		if vals[i] > vals[i-1] {
			distinct++
		}
	}
	return distinct
}
