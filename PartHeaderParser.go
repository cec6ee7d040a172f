package formslurper

import (
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/adampresley/webframework/logging2"
)

const (
	namePattern     = `name="?([^"]*)`
	fileNamePattern = `filename\*?="?([^";]*)`

	utf8FileNamePrefix = "utf-8''"
)

/*
A PartHeaderParser consumes the header lines at the front of a part's
window, pulls out the field name, filename, and content type, and then
repositions the window start so reads return body bytes only. The regular
expressions are compiled per parser, so independent scans never share
state.
*/
type PartHeaderParser struct {
	nameExpression     *regexp.Regexp
	fileNameExpression *regexp.Regexp

	logger logging2.ILogger
}

/*
NewPartHeaderParser creates a new PartHeaderParser
*/
func NewPartHeaderParser(logger logging2.ILogger) *PartHeaderParser {
	return &PartHeaderParser{
		nameExpression:     regexp.MustCompile(namePattern),
		fileNameExpression: regexp.MustCompile(fileNamePattern),

		logger: logger,
	}
}

/*
Parse reads header lines from the window until the blank separator line,
builds a Part from what it finds, and moves the window start past the
headers. A window that runs out before the separator line stops the header
loop and reports the part as truncated.
*/
func (parser *PartHeaderParser) Parse(view *WindowedReader) (*Part, bool, error) {
	var name string
	var fileName string
	var contentType string
	var truncated bool

	for {
		line, err := parser.readLine(view)

		if err == io.EOF {
			truncated = true
			break
		}

		if err != nil {
			return nil, false, err
		}

		if line == "" {
			break
		}

		lowerLine := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lowerLine, "content-disposition"):
			if matches := parser.nameExpression.FindStringSubmatch(line); matches != nil {
				name = matches[1]
			}

			if matches := parser.fileNameExpression.FindStringSubmatch(line); matches != nil {
				fileName = parser.decodeFileName(matches[1])
			}

		case strings.HasPrefix(lowerLine, "content-type"):
			contentType = strings.TrimSpace(line[strings.LastIndex(line, " ")+1:])
		}
	}

	view.RepositionStart()

	parser.logger.Debugf("Parsed part headers: name=%s filename=%s contentType=%s", name, fileName, contentType)
	return NewPart(name, fileName, contentType, view, parser.logger), truncated, nil
}

/*
decodeFileName percent-decodes a filename that carries the RFC 5987 UTF-8
prefix. Any other filename, and any filename that fails to decode, comes
back unchanged. No other charset and no language tags are handled.
*/
func (parser *PartHeaderParser) decodeFileName(fileName string) string {
	if !strings.HasPrefix(strings.ToLower(fileName), utf8FileNamePrefix) {
		return fileName
	}

	decoded, err := url.PathUnescape(fileName[len(utf8FileNamePrefix):])
	if err != nil {
		parser.logger.Debugf("Could not percent-decode filename '%s': %s", fileName, err.Error())
		return fileName
	}

	return decoded
}

/*
readLine reads bytes up to, but not including, the next line-feed, and
trims a trailing carriage-return. io.EOF means the window ran out before a
line-feed showed up.
*/
func (parser *PartHeaderParser) readLine(view *WindowedReader) (string, error) {
	var line []byte

	for {
		b, err := view.ReadByte()
		if err != nil {
			return "", err
		}

		if b == '\n' {
			break
		}

		line = append(line, b)
	}

	return strings.TrimSuffix(string(line), "\r"), nil
}
