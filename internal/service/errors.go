package service

import "errors"

// ErrValidation marks input shape violations detected before persistence.
// Callers match it with errors.Is and map it to a 400 response.
var ErrValidation = errors.New("validation error")
