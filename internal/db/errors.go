package db

import "fmt"

// DatabaseError reports a statement that did not complete. Op names the store
// operation; Err carries the driver detail and must stay server-side.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
