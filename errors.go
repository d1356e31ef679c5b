package gridastar

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("gridastar: rows and columns must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,rows)×[0,columns).
	ErrOutOfBounds = errors.New("gridastar: coordinate out of bounds")
	// ErrMissingEndpoint indicates FindPath was called without a start or target.
	ErrMissingEndpoint = errors.New("gridastar: start and target must both be set")
	// ErrPathFound indicates a mutation attempted after a search was run.
	// Reset the pathfinder first.
	ErrPathFound = errors.New("gridastar: grid is locked until reset")
	// ErrNoPath indicates the search exhausted the open set without reaching the target.
	ErrNoPath = errors.New("gridastar: no path found")
	// ErrSearchInProgress indicates a stepped search has not finished yet.
	ErrSearchInProgress = errors.New("gridastar: search in progress")
	// ErrSearchAbandoned indicates the pathfinder was reset under a stepped search.
	ErrSearchAbandoned = errors.New("gridastar: search abandoned by reset")
)
