// Package ripper implements the RIPPER (Repeated Incremental Pruning to
// Produce Error Reduction) rule-learning algorithm: a class-by-class
// building stage that grows and prunes one rule at a time, an optional
// optimization stage that revises or replaces rules to shrink total
// description length, and a final redundant-condition cleanup pass. The
// learner owns a single seeded RNG; the same seed over the same data always
// produces the same ruleset.
package ripper
