package translate

import "errors"

// Sentinel errors returned by the translation entry points. Wrapped values
// carry the offending verb or name; discriminate with errors.Is.
var (
	// ErrEmptyCommand is returned for blank command input.
	ErrEmptyCommand = errors.New("empty command provided")
	// ErrCommandNotFound is returned when no rule covers the verb and no
	// passthrough applies.
	ErrCommandNotFound = errors.New("no translation found for command")
	// ErrInvalidOS is returned by the string-keyed entry points for an
	// unrecognized OS name.
	ErrInvalidOS = errors.New("invalid operating system")
	// ErrSameOS exists for callers that want to treat identical source and
	// target as an error. The engine itself passes same-OS input through.
	ErrSameOS = errors.New("source and target OS are the same")
	// ErrEmptyPath is returned for blank path input.
	ErrEmptyPath = errors.New("empty path provided")
	// ErrInvalidPath exists for callers that reject paths cmdx cannot
	// classify. The engine itself treats unrecognized shapes as relative
	// paths and translates separators only.
	ErrInvalidPath = errors.New("invalid path")
)
