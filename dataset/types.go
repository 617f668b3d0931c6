package dataset

import (
	"math"

	"github.com/katalvlaran/ripper/attribute"
)

// DefaultWeight is the row weight used by PushInstance when the caller
// does not supply one explicitly via PushWeightedInstance.
const DefaultWeight = 1.0

// Row is one example: an ordered tuple of encoded values matching the
// owning Dataset's schema, plus a non-negative weight.
type Row struct {
	Values []float64
	Weight float64
}

// Dataset is a schema (ordered attribute list) plus an ordered sequence of
// rows. The schema is frozen at construction; attribute 0 is always the
// Discrete class attribute.
type Dataset struct {
	schema []attribute.Attribute
	rows   []Row
}

// New constructs an empty Dataset over schema. schema[0] must be a
// Discrete attribute (the class attribute).
func New(schema []attribute.Attribute) (*Dataset, error) {
	if len(schema) == 0 || schema[0].Kind() != attribute.Discrete {
		if len(schema) > 0 && schema[0].Kind() != attribute.Discrete {
			return nil, ErrContinuousClass
		}
		return nil, ErrClassNotAtZero
	}
	sc := make([]attribute.Attribute, len(schema))
	copy(sc, schema)
	return &Dataset{schema: sc}, nil
}

// CreateEmpty returns a new, row-less Dataset over schema, validated as by
// New. The receiver's own schema is not used.
func (d *Dataset) CreateEmpty(schema []attribute.Attribute) (*Dataset, error) {
	return New(schema)
}

// Schema returns the attribute list. Callers must not mutate the returned
// slice.
func (d *Dataset) Schema() []attribute.Attribute { return d.schema }

// NumInstances returns the number of rows.
func (d *Dataset) NumInstances() int { return len(d.rows) }

// NumAttributes returns the schema width, including the class attribute.
func (d *Dataset) NumAttributes() int { return len(d.schema) }

// NumClasses returns the domain size of the class attribute (index 0).
func (d *Dataset) NumClasses() int { return d.schema[0].NumValues() }

// ClassAttr returns the class attribute (schema index 0).
func (d *Dataset) ClassAttr() attribute.Attribute { return d.schema[0] }

// SumOfWeights returns the sum of every row's weight.
func (d *Dataset) SumOfWeights() float64 {
	var sum float64
	for _, r := range d.rows {
		sum += r.Weight
	}
	return sum
}

// ClassValue returns the class-attribute value (a domain index) of row i.
func (d *Dataset) ClassValue(i int) float64 { return d.rows[i].Values[0] }

// ValueOfAttr returns the value of attribute index a in row i.
func (d *Dataset) ValueOfAttr(i, a int) float64 { return d.rows[i].Values[a] }

// Weight returns the weight of row i.
func (d *Dataset) Weight(i int) float64 { return d.rows[i].Weight }

// IsMissing reports whether row i's value for attribute a is the missing
// sentinel for that attribute's kind.
func (d *Dataset) IsMissing(i, a int) bool {
	v := d.rows[i].Values[a]
	if d.schema[a].Kind() == attribute.Discrete {
		return int(v) == attribute.MissingIndex
	}
	return math.IsNaN(v)
}

// Row returns a copy of row i.
func (d *Dataset) Row(i int) Row {
	vals := make([]float64, len(d.rows[i].Values))
	copy(vals, d.rows[i].Values)
	return Row{Values: vals, Weight: d.rows[i].Weight}
}

// PushInstance appends a row with the default weight (1.0).
func (d *Dataset) PushInstance(values []float64) error {
	return d.PushWeightedInstance(values, DefaultWeight)
}

// PushWeightedInstance appends a row with an explicit weight.
func (d *Dataset) PushWeightedInstance(values []float64, weight float64) error {
	if len(values) != len(d.schema) {
		return ErrRowWidthMismatch
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	d.rows = append(d.rows, Row{Values: vals, Weight: weight})
	return nil
}

// Slice returns a new Dataset holding the n rows starting at from (both
// bounds are clamped to the receiver's length; a negative or overlong
// request is truncated rather than erroring, since it is only ever used
// internally on already-validated ranges).
func (d *Dataset) Slice(from, n int) *Dataset {
	if from < 0 {
		from = 0
	}
	if from > len(d.rows) {
		from = len(d.rows)
	}
	end := from + n
	if end > len(d.rows) || n < 0 {
		end = len(d.rows)
	}
	out := d.CloneEmpty()
	out.rows = make([]Row, end-from)
	for i := from; i < end; i++ {
		out.rows[i-from] = cloneRow(d.rows[i])
	}
	return out
}

// CloneEmpty returns a new Dataset with the same schema and no rows.
func (d *Dataset) CloneEmpty() *Dataset {
	sc := make([]attribute.Attribute, len(d.schema))
	copy(sc, d.schema)
	return &Dataset{schema: sc}
}

// Clone returns a deep copy of d: same schema, independent row storage.
func (d *Dataset) Clone() *Dataset {
	out := d.CloneEmpty()
	out.rows = make([]Row, len(d.rows))
	for i, r := range d.rows {
		out.rows[i] = cloneRow(r)
	}
	return out
}

func cloneRow(r Row) Row {
	vals := make([]float64, len(r.Values))
	copy(vals, r.Values)
	return Row{Values: vals, Weight: r.Weight}
}
