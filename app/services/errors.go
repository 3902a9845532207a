package services

import "errors"

// ErrDuplicatePost is returned when the same mfer already posted during the
// current calendar day. The message is the wire-level error string.
var ErrDuplicatePost = errors.New("You can only post once per mfer per day")

// ValidationError reports a rejected create input. It is a client error,
// never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsClientError reports whether err should map to a 400 response rather
// than a 500.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrDuplicatePost)
}
