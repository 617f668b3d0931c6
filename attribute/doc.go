// Package attribute defines the typed schema elements a RIPPER dataset is
// built over.
//
// An Attribute is one of two variants:
//
//	Discrete   — a finite, ordered domain of string labels; values are
//	             stored as domain indices.
//	Continuous — a numeric column (int, float or date subtype); values are
//	             stored as float64, with date subtypes holding
//	             seconds-since-epoch.
//
// Attributes are immutable once constructed: a schema is frozen for the
// life of the dataset it describes, and by convention the class attribute
// of a dataset is always Discrete and sits at index 0.
package attribute
