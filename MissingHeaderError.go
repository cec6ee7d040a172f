package formslurper

import "fmt"

/*
A MissingHeaderError is used to alert a client that a requested header
does not exist in a header set.
*/
type MissingHeaderError struct {
	HeaderName string
}

/*
MissingHeader returns a new error object
*/
func MissingHeader(headerName string) *MissingHeaderError {
	return &MissingHeaderError{
		HeaderName: headerName,
	}
}

func (err *MissingHeaderError) Error() string {
	return fmt.Sprintf("There is no header named '%s'", err.HeaderName)
}
