// Package rule implements a RIPPER rule: a conjunction of antecedents
// (package antecedent) predicting one class index.
//
// Rule.Grow performs the greedy, information-gain-driven hill-climb that
// builds a rule's antecedent list from a grow fold; Rule.Prune trims that
// list back using a held-out prune fold and a worth-rate criterion;
// Rule.CleanUp removes continuous antecedents that a tighter antecedent on
// the same attribute and side, anywhere in the list, makes redundant. An
// empty antecedent
// list covers every row — this is the "default rule" every ruleset ends
// with.
package rule
