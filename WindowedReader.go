package formslurper

import (
	"io"
)

/*
A WindowedReader is a read-only view over a slice of a shared byte source,
addressed by absolute start and end offsets. It never copies the bytes it
covers; every read is a positioned read against the shared io.ReaderAt, and
each view carries its own position, so reading from two views over the same
source can interleave safely.

Start is mutated exactly once per part, by RepositionStart, after the header
lines have been consumed. From then on the view covers body bytes only.
*/
type WindowedReader struct {
	source   io.ReaderAt
	start    int64
	end      int64
	position int64
}

/*
NewWindowedReader returns a view over source covering [start, end)
*/
func NewWindowedReader(source io.ReaderAt, start, end int64) *WindowedReader {
	return &WindowedReader{
		source:   source,
		start:    start,
		end:      end,
		position: start,
	}
}

/*
Read fills p with bytes from the window, clamped to what remains before the
end offset. Once the window is exhausted it returns io.EOF. If the underlying
source reports exhaustion early the position jumps to the end of the window.
*/
func (windowedReader *WindowedReader) Read(p []byte) (int, error) {
	remaining := windowedReader.end - windowedReader.position
	if remaining <= 0 {
		return 0, io.EOF
	}

	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	numBytes, err := windowedReader.source.ReadAt(p, windowedReader.position)
	windowedReader.position += int64(numBytes)

	if err == io.EOF {
		windowedReader.position = windowedReader.end

		if numBytes > 0 {
			return numBytes, nil
		}

		return 0, io.EOF
	}

	return numBytes, err
}

/*
ReadByte returns the next byte in the window, or io.EOF at the window boundary
*/
func (windowedReader *WindowedReader) ReadByte() (byte, error) {
	var singleByte [1]byte

	numBytes, err := windowedReader.Read(singleByte[:])
	if numBytes == 0 {
		if err == nil {
			err = io.EOF
		}

		return 0, err
	}

	return singleByte[0], nil
}

/*
Seek translates an offset relative to the start, current position, or end of
the window into an absolute offset. A translated offset that falls before the
window start or past its end fails with an OutOfBoundsError. The returned
offset is relative to the window start.
*/
func (windowedReader *WindowedReader) Seek(offset int64, whence int) (int64, error) {
	var absolute int64

	switch whence {
	case io.SeekStart:
		absolute = windowedReader.start + offset
	case io.SeekCurrent:
		absolute = windowedReader.position + offset
	case io.SeekEnd:
		absolute = windowedReader.end + offset
	default:
		return 0, UnsupportedOperation("seek whence")
	}

	if absolute < windowedReader.start || absolute > windowedReader.end {
		return 0, OutOfBounds(absolute)
	}

	windowedReader.position = absolute
	return absolute - windowedReader.start, nil
}

/*
RepositionStart moves the window start up to the current position. The header
parser calls this once per part so that the start offset excludes the header
bytes without copying anything.
*/
func (windowedReader *WindowedReader) RepositionStart() {
	windowedReader.start = windowedReader.position
}

/*
Write always fails. A WindowedReader is a read-only view.
*/
func (windowedReader *WindowedReader) Write(p []byte) (int, error) {
	return 0, UnsupportedOperation("write")
}

/*
Truncate always fails. The window length is fixed by the scan that made it.
*/
func (windowedReader *WindowedReader) Truncate(size int64) error {
	return UnsupportedOperation("truncate")
}

/*
Len returns the number of unread bytes left in the window
*/
func (windowedReader *WindowedReader) Len() int64 {
	return windowedReader.end - windowedReader.position
}
