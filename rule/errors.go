package rule

import "errors"

// Sentinel errors returned by Rule operations.
var (
	// ErrNoConsequent is returned by Grow when the rule's Consequent has
	// not been set to a valid (non-negative) class index.
	ErrNoConsequent = errors.New("rule: cannot grow a rule with no consequent set")
)
