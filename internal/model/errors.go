package model

import "errors"

var (
	// IOErr marks a dataset that could not be opened or read.
	IOErr = errors.New("could not read")
	// ParseErr marks a malformed header, row or numeric field.
	ParseErr = errors.New("could not parse")
	// InvalidArgumentErr marks invalid user input or call arguments.
	InvalidArgumentErr = errors.New("invalid argument")
)
