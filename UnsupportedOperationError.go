package formslurper

import "fmt"

/*
An UnsupportedOperationError is used to alert a caller that a write or
length mutation was attempted on a read-only view. This is a programming
error on the caller's side.
*/
type UnsupportedOperationError struct {
	Operation string
}

/*
UnsupportedOperation returns a new error object
*/
func UnsupportedOperation(operation string) *UnsupportedOperationError {
	return &UnsupportedOperationError{
		Operation: operation,
	}
}

func (err *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("Operation '%s' is not supported on a read-only view", err.Operation)
}
