package formslurper

import "fmt"

/*
A NotMultipartError is used to alert a caller that a header collection does
not describe a multipart/form-data body. The caller should treat the body
as non-multipart content.
*/
type NotMultipartError struct {
	ContentType string
}

/*
NotMultipart returns a new error object
*/
func NotMultipart(contentType string) *NotMultipartError {
	return &NotMultipartError{
		ContentType: contentType,
	}
}

func (err *NotMultipartError) Error() string {
	return fmt.Sprintf("Content type '%s' is not multipart/form-data with a boundary", err.ContentType)
}
