package packer

import "errors"

// Sentinel errors for package packer.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrExpectedDirectory = errors.New("expected directory but got file")
	ErrEmptyDestination  = errors.New("archive destination is empty")
)
