package service

import "errors"

var (
	// ErrRecipeNotFound is returned when the catalog has no record for an id
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrUpstream marks a failed, rejected or undecodable provider call
	ErrUpstream = errors.New("upstream provider error")

	// ErrUnparseableOutput marks model text that does not hold the expected JSON
	ErrUnparseableOutput = errors.New("model output is not valid JSON")

	// ErrMissingInstructions marks a found meal without an instructions field
	ErrMissingInstructions = errors.New("meal has no instructions")
)
