package memory

import "errors"

var (
	// ErrUnclassifiableEvent is returned when an identifier carries none of
	// the dimension suffixes.
	ErrUnclassifiableEvent = errors.New("event has no dimension suffix")
	// ErrUnknownSense is returned when an episode is filled for a sense that
	// has no recorded events in the graph.
	ErrUnknownSense = errors.New("unknown sense")
	// ErrUnknownDimension is returned for dimension keys other than
	// biological, emotional and cultural.
	ErrUnknownDimension = errors.New("unknown dimension")
	// ErrMissingRecord is returned when an operation needs a confirmed record
	// that does not exist.
	ErrMissingRecord = errors.New("memory not found")
	// ErrCyclicPatternChain is returned when a causal chain leads back to an
	// event already on the current path.
	ErrCyclicPatternChain = errors.New("cyclic pattern chain")
)
