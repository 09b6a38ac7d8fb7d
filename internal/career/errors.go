package career

import "fmt"

// InputError reports a request field the service cannot work with.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
