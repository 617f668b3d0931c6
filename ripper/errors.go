package ripper

import "errors"

// Sentinel errors returned by Learner operations.
var (
	// ErrEmptyDataset names the case of training data with no usable rows
	// left after dropping missing-class instances. Fit does not return it:
	// for such data Fit returns a model holding only a default rule.
	ErrEmptyDataset = errors.New("ripper: no usable training rows")
)
