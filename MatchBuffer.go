package formslurper

import "bytes"

/*
A MatchBuffer is a fixed-capacity window over the most recently read bytes
of a scan. It owns nothing from the stream; it is a comparison scratch
buffer the StreamScanner fills one byte at a time and tests against the
boundary templates. A Reset leaves stale bytes behind the cursor, which is
harmless because comparisons only happen when the buffer is full.
*/
type MatchBuffer struct {
	boundary *Boundary
	buffer   []byte
	cursor   int
}

/*
NewMatchBuffer returns a MatchBuffer sized to the boundary's template length
*/
func NewMatchBuffer(boundary *Boundary) *MatchBuffer {
	return &MatchBuffer{
		boundary: boundary,
		buffer:   make([]byte, boundary.TemplateLength()),
	}
}

/*
Insert writes a byte at the cursor and advances it. Inserting into a full
buffer without an intervening Reset violates the caller contract.
*/
func (matchBuffer *MatchBuffer) Insert(b byte) {
	matchBuffer.buffer[matchBuffer.cursor] = b
	matchBuffer.cursor++
}

/*
Reset rewinds the cursor to the start of the buffer
*/
func (matchBuffer *MatchBuffer) Reset() {
	matchBuffer.cursor = 0
}

/*
IsFull returns true when the cursor has reached capacity
*/
func (matchBuffer *MatchBuffer) IsFull() bool {
	return matchBuffer.cursor == len(matchBuffer.buffer)
}

/*
IsSeparator tests the buffer contents against the separator template.
Only meaningful when the buffer is full.
*/
func (matchBuffer *MatchBuffer) IsSeparator() bool {
	return bytes.Equal(matchBuffer.buffer, matchBuffer.boundary.Separator())
}

/*
IsClosing tests the buffer contents against the terminator template. The
templates differ in their final two bytes, so IsSeparator and IsClosing
are never true at the same time.
*/
func (matchBuffer *MatchBuffer) IsClosing() bool {
	return bytes.Equal(matchBuffer.buffer, matchBuffer.boundary.Terminator())
}
