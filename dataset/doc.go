// Package dataset is the in-memory table RIPPER trains and predicts over:
// an ordered collection of weighted rows over a fixed attribute schema.
//
// A Dataset is a value: Clone and CloneEmpty produce independent copies,
// and every transformation (Sort, Stratify, Partition, Filter, Slice)
// returns a new Dataset rather than mutating a shared one in place,
// matching the single-threaded, no-aliased-mutation model described by
// the core this package belongs to. The exceptions are PushInstance and
// PushWeightedInstance, which append to the receiver, and
// ResortClassesByCount, which rewrites the receiver's class attribute and
// class values in place.
//
// Row values are stored as float64 regardless of the declared
// attribute.Kind: Discrete values hold a domain index, Continuous values
// hold the raw number (or seconds-since-epoch for Date subtypes). A
// missing value is attribute.MissingIndex for Discrete columns and NaN
// for Continuous columns; IsMissing hides this encoding from callers.
//
// By convention attribute 0 of every Dataset's schema is the class
// attribute, and it is always Discrete.
package dataset
