// Package rulestats tracks the residual-coverage bookkeeping and
// description-length accounting a rule-learning pass needs to decide
// whether a ruleset is earning its size. RuleStats never owns a ruleset:
// callers push rules one at a time as they accept them, and pass the
// ruleset slice explicitly to the free functions (CountData,
// RemoveCoveredBySuccessors, ReduceDL) that need to look across several
// positions at once.
package rulestats
