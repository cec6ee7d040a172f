package formslurper

import (
	"bytes"

	"github.com/adampresley/webframework/logging2"
	"github.com/pkg/errors"
)

/*
ParseFormData is the top-level entry point for callers holding a fully
buffered body and an already-parsed header collection. It recovers the
boundary token from the headers, scans the body, and returns the parts in
discovery order. A body whose headers do not describe multipart/form-data
returns a NotMultipartError, which callers should treat as "handle this
body some other way" rather than a failure.
*/
func ParseFormData(body []byte, headers ISet, logger logging2.ILogger) (*ScanResult, error) {
	boundaryToken, err := ExtractBoundary(headers)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Scanning %d byte body with boundary '%s'", len(body), boundaryToken)
	return ParseFormDataWithBoundary(body, boundaryToken, logger)
}

/*
ParseFormDataWithBoundary scans a fully buffered body with a boundary token
the caller already has
*/
func ParseFormDataWithBoundary(body []byte, boundaryToken string, logger logging2.ILogger) (*ScanResult, error) {
	scanner := NewStreamScanner(bytes.NewReader(body), int64(len(body)), boundaryToken, logger)

	result, err := scanner.Scan()
	if err != nil {
		return nil, errors.Wrapf(err, "Error scanning multipart body")
	}

	return result, nil
}
