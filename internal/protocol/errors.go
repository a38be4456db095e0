package protocol

import "fmt"

// DecodeError reports a frame whose payload is not well-formed JSON.
type DecodeError struct {
	Frame string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("protocol: undecodable frame %q: %v", e.Frame, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
