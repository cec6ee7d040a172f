package formslurper

import "io"

/*
An IPart is one finished segment of a multipart/form-data body: the metadata
pulled from its header lines plus a windowed view over its body bytes.
*/
type IPart interface {
	GetName() string
	GetFileName() string
	GetContentType() string
	GetBody() string
	GetBodyReader() io.ReadSeeker
}
