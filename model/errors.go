package model

import "errors"

// Sentinel errors returned by Model operations.
var (
	// ErrSchemaMismatch is returned by Predict/Test when the input
	// dataset's attribute set does not match the model's schema.
	ErrSchemaMismatch = errors.New("model: input schema does not contain the model's attributes")

	// ErrBadMagic is returned by Load when the stream does not begin with
	// this package's magic tag.
	ErrBadMagic = errors.New("model: not a ripper model stream")

	// ErrEmptyRuleset is returned by Predict/Test when the model has no
	// rules at all (not even a default rule) to fall back on.
	ErrEmptyRuleset = errors.New("model: model has no rules")
)
