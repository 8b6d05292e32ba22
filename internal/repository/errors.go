package repository

import "errors"

// ErrNotFound is returned when a row does not exist, including update
// and delete calls that affected zero rows.
var ErrNotFound = errors.New("not found")
