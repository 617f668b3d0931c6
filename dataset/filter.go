package dataset

import "github.com/katalvlaran/ripper/attribute"

// Filter returns a new Dataset holding only the rows for which keep
// returns true, preserving relative order.
func (d *Dataset) Filter(keep func(i int) bool) *Dataset {
	out := d.CloneEmpty()
	for i := range d.rows {
		if keep(i) {
			out.rows = append(out.rows, cloneRow(d.rows[i]))
		}
	}
	return out
}

// Bucket partitions d's rows by the domain index of Discrete attribute a,
// returning one Dataset per domain value. Rows missing attribute a are
// dropped. The returned slice has length equal to attribute a's domain
// size.
func (d *Dataset) Bucket(a int) []*Dataset {
	n := d.schema[a].NumValues()
	out := make([]*Dataset, n)
	for i := range out {
		out[i] = d.CloneEmpty()
	}
	for i, r := range d.rows {
		if d.IsMissing(i, a) {
			continue
		}
		idx := int(r.Values[a])
		out[idx].rows = append(out[idx].rows, cloneRow(r))
	}
	return out
}

// SortAttrsAs returns a new Dataset whose columns are permuted to match
// reference's attribute order (matched by name). It fails with
// ErrSchemaMismatch if the two schemas do not contain exactly the same set
// of attribute names.
func (d *Dataset) SortAttrsAs(reference []attribute.Attribute) (*Dataset, error) {
	if len(reference) != len(d.schema) {
		return nil, ErrSchemaMismatch
	}
	perm := make([]int, len(reference))
	for newIdx, ref := range reference {
		oldIdx := -1
		for i, a := range d.schema {
			if a.Name() == ref.Name() {
				oldIdx = i
				break
			}
		}
		if oldIdx == -1 {
			return nil, ErrSchemaMismatch
		}
		perm[newIdx] = oldIdx
	}

	out := &Dataset{schema: make([]attribute.Attribute, len(reference))}
	copy(out.schema, reference)
	out.rows = make([]Row, len(d.rows))
	for i, r := range d.rows {
		vals := make([]float64, len(perm))
		for newIdx, oldIdx := range perm {
			vals[newIdx] = r.Values[oldIdx]
		}
		out.rows[i] = Row{Values: vals, Weight: r.Weight}
	}
	return out, nil
}
