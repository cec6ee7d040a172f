package formslurper

import (
	"regexp"
)

const boundaryPattern = `(?i)^multipart/form-data;\s*boundary=(.*)$`

/*
ExtractBoundary recovers the multipart boundary token from an ordered
collection of already-parsed protocol headers. Only the first Content-Type
entry is consulted. A missing Content-Type header, or a value that is not
multipart/form-data with a boundary parameter, returns a NotMultipartError.

The captured token is returned verbatim. If the source wrapped the token in
quotes the quotes stay in place and flow into the boundary templates.
*/
func ExtractBoundary(headers ISet) (string, error) {
	contentType, err := headers.Get("content-type")
	if err != nil {
		return "", NotMultipart("")
	}

	values := contentType.GetValues()
	if len(values) == 0 {
		return "", NotMultipart("")
	}

	boundaryExpression := regexp.MustCompile(boundaryPattern)

	matches := boundaryExpression.FindStringSubmatch(values[0])
	if matches == nil {
		return "", NotMultipart(values[0])
	}

	return matches[1], nil
}
