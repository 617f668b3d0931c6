package dataset

import "sort"

// SortByAttr returns a new Dataset whose rows are d's rows stably sorted
// by ascending value of attribute a. Rows missing attribute a sort after
// every non-missing row, preserving their relative order (stable).
func (d *Dataset) SortByAttr(a int) *Dataset {
	out := d.Clone()
	idx := make([]int, len(out.rows))
	for i := range idx {
		idx[i] = i
	}
	missing := func(i int) bool { return out.IsMissing(i, a) }
	sort.SliceStable(idx, func(x, y int) bool {
		i, j := idx[x], idx[y]
		mi, mj := missing(i), missing(j)
		if mi != mj {
			return !mi // non-missing sorts before missing
		}
		if mi && mj {
			return false
		}
		return out.rows[i].Values[a] < out.rows[j].Values[a]
	})
	reordered := make([]Row, len(out.rows))
	for newPos, oldPos := range idx {
		reordered[newPos] = out.rows[oldPos]
	}
	out.rows = reordered
	return out
}
