package interfaces

import "errors"

// ErrNotFound is wrapped by every repository when the referenced record does
// not exist, so callers can distinguish missing records from infrastructure
// failures with errors.Is.
var ErrNotFound = errors.New("record not found")
