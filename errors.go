package symspell

import "errors"

var (
	// ErrConfiguration is returned for constructor arguments or options that violate their bounds.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrDistanceTooLarge is returned when a lookup asks for a larger edit distance than the index was built for.
	ErrDistanceTooLarge = errors.New("edit distance exceeds max dictionary edit distance")
	// ErrResourceUnavailable is returned when a file cannot be opened, read or written.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrCorruptSnapshot is returned when a snapshot cannot be decoded or fails validation.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
