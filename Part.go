package formslurper

import (
	"io"

	"github.com/adampresley/webframework/logging2"
)

/*
A Part represents a single segment from a multipart/form-data body. It
carries the field name, the optional filename and content type from the
part's header lines, and a WindowedReader over the body bytes. A Part is
built by the header parser and is immutable afterwards.
*/
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Body        *WindowedReader

	logger logging2.ILogger
}

/*
NewPart returns a new Part over a body window
*/
func NewPart(name, fileName, contentType string, body *WindowedReader, logger logging2.ILogger) *Part {
	return &Part{
		Name:        name,
		FileName:    fileName,
		ContentType: contentType,
		Body:        body,

		logger: logger,
	}
}

/*
GetName returns the form field name for this part
*/
func (part *Part) GetName() string {
	return part.Name
}

/*
GetFileName returns the filename for this part, already percent-decoded
when the source tagged it as UTF-8. Empty when the part is not a file.
*/
func (part *Part) GetFileName() string {
	return part.FileName
}

/*
GetContentType returns the content type for this part, or an empty string
when the part carried no Content-Type header
*/
func (part *Part) GetContentType() string {
	return part.ContentType
}

/*
GetBody reads the entire body window and returns it as a string. The window
is rewound first, so repeated calls return the same content.
*/
func (part *Part) GetBody() string {
	var err error
	var bytes []byte

	if _, err = part.Body.Seek(0, io.SeekStart); err != nil {
		part.logger.Errorf("Error rewinding part body: %s", err.Error())
		return ""
	}

	if bytes, err = io.ReadAll(part.Body); err != nil {
		part.logger.Errorf("Error reading part body: %s", err.Error())
		return ""
	}

	return string(bytes)
}

/*
GetBodyReader returns the body window for callers that want to stream or
seek the body themselves
*/
func (part *Part) GetBodyReader() io.ReadSeeker {
	return part.Body
}
