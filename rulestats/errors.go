package rulestats

import "errors"

// Sentinel errors returned by RuleStats operations.
var (
	// ErrEmptyStack is returned by PopRule when no rule has been pushed.
	ErrEmptyStack = errors.New("rulestats: no rule to pop")
	// ErrIndexOutOfRange is returned by Stats and GetFiltered for an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("rulestats: index out of range")
)
