package domain

import "errors"

// ErrValidation is the root of every domain validation error. Handlers map
// anything wrapping it to a 400 response; the wrapped message is safe to
// show to the caller.
var ErrValidation = errors.New("validation failed")
