package formslurper

import (
	"bufio"
	"io"

	"github.com/adampresley/webframework/logging2"
	"github.com/pkg/errors"
)

/*
notFound is the sentinel offset for a boundary search that exhausted the
source without a match
*/
const notFound int64 = -1

/*
A StreamScanner walks a multipart/form-data byte source once, start to
finish, locating boundary lines and slicing the source into one
WindowedReader per part. The scanner owns its own sequential cursor over
the source; parts hand out positioned reads against the same io.ReaderAt,
so nothing the caller does with a finished part can disturb the scan.

All scan state, including the boundary templates and the match buffer,
belongs to one scanner. Scans over independent sources are reentrant.
*/
type StreamScanner struct {
	source       io.ReaderAt
	length       int64
	boundary     *Boundary
	matchBuffer  *MatchBuffer
	headerParser *PartHeaderParser
	reader       *bufio.Reader
	position     int64

	logger logging2.ILogger
}

/*
NewStreamScanner creates a scanner over a source of known total length,
using the provided boundary token
*/
func NewStreamScanner(source io.ReaderAt, length int64, boundaryToken string, logger logging2.ILogger) *StreamScanner {
	boundary := NewBoundary(boundaryToken)

	return &StreamScanner{
		source:       source,
		length:       length,
		boundary:     boundary,
		matchBuffer:  NewMatchBuffer(boundary),
		headerParser: NewPartHeaderParser(logger),
		reader:       bufio.NewReader(io.NewSectionReader(source, 0, length)),

		logger: logger,
	}
}

/*
Scan locates every part in the source and returns them in discovery order.
Discovery stops at the terminator boundary, at the end of the source, or at
the MAX_PARTS cap. Hitting the cap marks the result truncated rather than
failing the scan.
*/
func (scanner *StreamScanner) Scan() (*ScanResult, error) {
	var err error

	result := &ScanResult{
		Parts: make([]IPart, 0, 10),
	}

	/*
	 * Every boundary line is preceded by a CRLF that belongs to the
	 * boundary, not to the part content. Trimming templateLength + 2
	 * off a boundary-line end offset excludes both.
	 */
	trim := int64(scanner.boundary.TemplateLength() + 2)

	boundaryStart, closing, err := scanner.findNextBoundary()
	if err != nil {
		return nil, errors.Wrapf(err, "Error locating opening boundary")
	}

	for boundaryStart != notFound && !closing {
		if len(result.Parts) >= MAX_PARTS {
			scanner.logger.Errorf("Stopping scan at %d parts", MAX_PARTS)
			result.Truncated = true
			break
		}

		var boundaryEnd int64
		var contentEnd int64

		if boundaryEnd, closing, err = scanner.findNextBoundary(); err != nil {
			return nil, errors.Wrapf(err, "Error locating boundary after part %d", len(result.Parts))
		}

		if boundaryEnd == notFound {
			/*
			 * The source ran out before a proper boundary line. Recover
			 * the final part from the total length instead.
			 */
			contentEnd = scanner.length - trim
		} else {
			contentEnd = boundaryEnd - trim
		}

		view := NewWindowedReader(scanner.source, boundaryStart, contentEnd)

		part, truncated, err := scanner.headerParser.Parse(view)
		if err != nil {
			return nil, errors.Wrapf(err, "Error parsing headers for part %d", len(result.Parts))
		}

		if truncated {
			result.Truncated = true
		}

		scanner.logger.Debugf("Found part '%s' covering [%d, %d)", part.GetName(), boundaryStart, contentEnd)

		result.Parts = append(result.Parts, part)
		boundaryStart = boundaryEnd
	}

	return result, nil
}

/*
findNextBoundary reads the source byte by byte, feeding each byte into the
match buffer. The buffer resets on every line-feed and whenever it fills
without matching a template, so a template can only ever match at the start
of a line. When the buffer is full and matches, the position after the byte
just consumed is the boundary-line end offset. Exhausting the source
returns the notFound sentinel. The second return value reports whether the
match was the terminator boundary.
*/
func (scanner *StreamScanner) findNextBoundary() (int64, bool, error) {
	scanner.matchBuffer.Reset()

	for {
		b, err := scanner.reader.ReadByte()

		if err == io.EOF {
			return notFound, false, nil
		}

		if err != nil {
			return notFound, false, err
		}

		scanner.position++
		scanner.matchBuffer.Insert(b)

		if scanner.matchBuffer.IsFull() {
			if scanner.matchBuffer.IsSeparator() {
				return scanner.position, false, nil
			}

			if scanner.matchBuffer.IsClosing() {
				return scanner.position, true, nil
			}

			scanner.matchBuffer.Reset()
		}

		if b == '\n' {
			scanner.matchBuffer.Reset()
		}
	}
}
