package formslurper

import "fmt"

/*
An OutOfBoundsError is used to alert a caller that a seek or position
computation landed outside a window. It signals truncated or corrupt input
and is fatal for the current scan.
*/
type OutOfBoundsError struct {
	Offset int64
}

/*
OutOfBounds returns a new error object
*/
func OutOfBounds(offset int64) *OutOfBoundsError {
	return &OutOfBoundsError{
		Offset: offset,
	}
}

func (err *OutOfBoundsError) Error() string {
	return fmt.Sprintf("Offset %d is outside the window", err.Offset)
}
