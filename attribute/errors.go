package attribute

import "errors"

// Sentinel errors returned by attribute constructors and accessors.
// Callers branch on these with errors.Is; they are never wrapped with a
// stringified message at the definition site.
var (
	// ErrEmptyDomain is returned when a Discrete attribute is constructed
	// with a zero-length domain.
	ErrEmptyDomain = errors.New("attribute: discrete domain must be non-empty")

	// ErrDuplicateDomainValue is returned when a Discrete attribute's
	// domain contains the same label twice.
	ErrDuplicateDomainValue = errors.New("attribute: discrete domain contains a duplicate label")

	// ErrDomainOnlyDiscrete is returned when Domain() is called on a
	// Continuous attribute.
	ErrDomainOnlyDiscrete = errors.New("attribute: domain is only defined for discrete attributes")

	// ErrValueOutOfDomain is returned when ReprVal receives a domain index
	// outside [0, len(domain)).
	ErrValueOutOfDomain = errors.New("attribute: value index outside domain")

	// ErrUnknownSubtype is returned when a Continuous attribute is built
	// with an unrecognized numeric Subtype.
	ErrUnknownSubtype = errors.New("attribute: unknown continuous subtype")
)
