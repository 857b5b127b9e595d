package regexlib

import "errors"

var (
	// ErrMalformedInput covers unbalanced parentheses, illegal characters
	// and operators with missing operands.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEmptyResult is returned when a stage produces no structure at all
	// (e.g. an empty postfix stream). It is a terminal condition, never a
	// valid empty automaton.
	ErrEmptyResult = errors.New("empty result")
)
