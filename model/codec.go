package model

import (
	"encoding/gob"
	"io"

	"github.com/katalvlaran/ripper/antecedent"
	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/rule"
)

// magic self-describes the stream as a ripper model, guarding against
// decoding an unrelated gob blob as if it were one.
const magic = "ripper-model-v1"

// attrSnapshot is attribute.Attribute's gob-safe mirror: Attribute's fields
// are unexported, so gob (which only sees exported fields) cannot encode it
// directly.
type attrSnapshot struct {
	Name    string
	Kind    attribute.Kind
	Domain  []string
	Subtype attribute.Subtype
	Layout  string
}

type antSnapshot struct {
	Kind       antecedent.Kind
	AttrIndex  int
	Target     int
	SplitPoint float64
	Direction  antecedent.Direction
}

type ruleSnapshot struct {
	Consequent  int
	Antecedents []antSnapshot
}

type modelSnapshot struct {
	Magic  string
	Schema []attrSnapshot
	Rules  []ruleSnapshot
}

// Save encodes m to w as a self-describing gob stream.
func (m *Model) Save(w io.Writer) error {
	snap := modelSnapshot{
		Magic:  magic,
		Schema: make([]attrSnapshot, len(m.Schema)),
		Rules:  make([]ruleSnapshot, len(m.Rules)),
	}
	for i, a := range m.Schema {
		as := attrSnapshot{Name: a.Name(), Kind: a.Kind(), Subtype: a.Subtype(), Layout: a.Layout()}
		if a.Kind() == attribute.Discrete {
			dom, _ := a.Domain()
			as.Domain = dom
		}
		snap.Schema[i] = as
	}
	for i, r := range m.Rules {
		rs := ruleSnapshot{Consequent: r.Consequent, Antecedents: make([]antSnapshot, len(r.Antecedents))}
		for j, a := range r.Antecedents {
			rs.Antecedents[j] = antSnapshot{
				Kind:       a.Kind,
				AttrIndex:  a.AttrIndex,
				Target:     a.Target,
				SplitPoint: a.SplitPoint,
				Direction:  a.Direction,
			}
		}
		snap.Rules[i] = rs
	}
	return gob.NewEncoder(w).Encode(snap)
}

// Load decodes a Model previously written by Save.
func Load(r io.Reader) (*Model, error) {
	var snap modelSnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	if snap.Magic != magic {
		return nil, ErrBadMagic
	}

	schema := make([]attribute.Attribute, len(snap.Schema))
	for i, as := range snap.Schema {
		var a attribute.Attribute
		var err error
		if as.Kind == attribute.Discrete {
			a, err = attribute.NewDiscrete(as.Name, as.Domain)
		} else {
			a, err = attribute.NewContinuous(as.Name, as.Subtype, as.Layout)
		}
		if err != nil {
			return nil, err
		}
		schema[i] = a
	}

	rules := make([]*rule.Rule, len(snap.Rules))
	for i, rs := range snap.Rules {
		r := rule.New(rs.Consequent)
		r.Antecedents = make([]antecedent.Antecedent, len(rs.Antecedents))
		for j, as := range rs.Antecedents {
			r.Antecedents[j] = antecedent.Antecedent{
				Kind:       as.Kind,
				AttrIndex:  as.AttrIndex,
				Target:     as.Target,
				SplitPoint: as.SplitPoint,
				Direction:  as.Direction,
			}
		}
		rules[i] = r
	}

	return New(schema, rules), nil
}
