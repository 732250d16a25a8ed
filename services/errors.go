package services

import "errors"

// ErrNotFound is returned when an operation references a row that does not
// exist. Handlers map it to a 404.
var ErrNotFound = errors.New("record not found")
