package domain

import "errors"

var (
	// ErrNotFound marks a results route without a make identifier or year.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks any failure talking to the vehicle data provider.
	ErrUpstream = errors.New("upstream vehicle data provider")
)
