package model

import (
	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/rule"
)

// Model is an ordered ruleset bound to the schema it was trained against.
// The last rule is conventionally the default rule (no antecedents); any
// row not matched by an earlier rule falls through to it.
type Model struct {
	Schema []attribute.Attribute
	Rules  []*rule.Rule
}

// New returns a Model over schema with the given rule order. Callers must
// not mutate schema or rules afterward; New does not copy them.
func New(schema []attribute.Attribute, rules []*rule.Rule) *Model {
	return &Model{Schema: schema, Rules: rules}
}
