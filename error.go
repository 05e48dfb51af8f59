package kuuid

import "fmt"

// ParseError reports a value that is not a valid base64 UUID. It keeps the
// offending input for diagnostics.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid base64 representation for uuid %q: %s", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
