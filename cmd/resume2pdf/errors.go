package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrTooManyArgs     = errors.New("too many arguments")
)
