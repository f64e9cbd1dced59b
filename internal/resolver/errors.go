package resolver

import "errors"

var (
	// ErrConfigInconsistent means the classifier can emit a tag the catalog
	// cannot answer. Fatal at startup.
	ErrConfigInconsistent = errors.New("classifier labels and intent catalog are inconsistent")
	ErrEmptyDistribution  = errors.New("classifier returned an empty distribution")
)
