package antecedent

import "errors"

// Sentinel errors returned by antecedent construction and evaluation.
var (
	// ErrAttrIndexOutOfRange is returned when an Antecedent is constructed
	// against an attribute index the caller's schema does not contain.
	ErrAttrIndexOutOfRange = errors.New("antecedent: attribute index out of range")

	// ErrKindMismatch is returned when a Discrete antecedent is bound to a
	// Continuous attribute, or vice versa.
	ErrKindMismatch = errors.New("antecedent: antecedent kind does not match attribute kind")

	// ErrUnset describes an Antecedent whose SplitData has never run
	// (Target/Direction still "unset"). No function in this package
	// returns it; Covers reports only a bool and does not check for it.
	ErrUnset = errors.New("antecedent: antecedent has not been bound to a value by SplitData")
)
