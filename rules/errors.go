package rules

import "errors"

// Sentinel errors for package rules.
var (
	ErrInvalidPattern = errors.New("invalid glob pattern")
	ErrInvalidPath    = errors.New("invalid excluded path")
	ErrInvalidDir     = errors.New("invalid excluded directory name")
)
