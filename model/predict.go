package model

import (
	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/dataset"
)

// Predict returns, for each row of data in order, the consequent of the
// first rule in m.Rules that covers it. A model whose last rule is the
// default rule (no antecedents) always produces a result. If data's
// attribute order does not already match m.Schema, the columns are
// reordered first; ErrSchemaMismatch propagates from that reorder if the
// two schemas do not contain the same attribute set.
func (m *Model) Predict(data *dataset.Dataset) ([]int, error) {
	if len(m.Rules) == 0 {
		return nil, ErrEmptyRuleset
	}
	aligned, err := m.align(data)
	if err != nil {
		return nil, err
	}

	out := make([]int, aligned.NumInstances())
	for i := range out {
		out[i] = m.predictRow(aligned, i)
	}
	return out, nil
}

func (m *Model) predictRow(data *dataset.Dataset, i int) int {
	consequent := 0
	for _, r := range m.Rules {
		if r.Covers(data, i) {
			consequent = r.Consequent
			break
		}
	}
	return consequent
}

// align returns data unchanged if its schema is already ordered like
// m.Schema, otherwise a column-permuted copy; it wraps dataset's schema
// error as ErrSchemaMismatch.
func (m *Model) align(data *dataset.Dataset) (*dataset.Dataset, error) {
	schema := data.Schema()
	if sameOrder(schema, m.Schema) {
		return data, nil
	}
	out, err := data.SortAttrsAs(m.Schema)
	if err != nil {
		return nil, ErrSchemaMismatch
	}
	return out, nil
}

func sameOrder(a, b []attribute.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name() != b[i].Name() {
			return false
		}
	}
	return true
}
