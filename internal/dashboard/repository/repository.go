package repository

import "errors"

// ErrNotFound is returned when the addressed record does not exist in its
// document. Callers translate it distinctly from validation and persistence
// failures.
var ErrNotFound = errors.New("record not found")
