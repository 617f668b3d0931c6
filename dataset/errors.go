package dataset

import "errors"

// Sentinel errors returned by dataset constructors, accessors and
// schema-alignment operations.
var (
	// ErrClassNotAtZero is returned when New is called with an empty
	// attribute list, so that there is no class attribute at index 0.
	ErrClassNotAtZero = errors.New("dataset: class attribute must be at index 0")

	// ErrContinuousClass is returned when attribute 0 is Continuous.
	ErrContinuousClass = errors.New("dataset: class attribute must be discrete")

	// ErrRowWidthMismatch is returned when a pushed row's value count does
	// not match the schema width.
	ErrRowWidthMismatch = errors.New("dataset: row width does not match schema")

	// ErrAttrIndexOutOfRange is returned when an attribute index passed to
	// an accessor is outside [0, NumAttributes()).
	ErrAttrIndexOutOfRange = errors.New("dataset: attribute index out of range")

	// ErrRowIndexOutOfRange is returned when a row index passed to an
	// accessor is outside [0, NumInstances()).
	ErrRowIndexOutOfRange = errors.New("dataset: row index out of range")

	// ErrSchemaMismatch is returned by SortAttrsAs when the reference
	// schema does not contain exactly the same attribute set (by name) as
	// the receiver's schema.
	ErrSchemaMismatch = errors.New("dataset: schema attribute sets differ")

	// ErrNegativeWeight is returned when PushInstance receives a negative
	// row weight.
	ErrNegativeWeight = errors.New("dataset: row weight must be non-negative")

	// ErrInvalidPermutation is returned by Permute when order is not a
	// permutation of [0, NumInstances()).
	ErrInvalidPermutation = errors.New("dataset: order is not a valid permutation")
)
