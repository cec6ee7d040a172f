package formslurper

/*
MAX_PARTS caps how many parts a single scan will produce. This is a
defensive limit against pathological input, not a protocol limit.
*/
const MAX_PARTS int = 1000

/*
A ScanResult is the ordered outcome of one scan over a multipart body.
Parts appear in discovery order. Truncated reports that the scan gave up
early: either the part cap fired, or a part's header block was cut off by
the end of its window.
*/
type ScanResult struct {
	Parts     []IPart
	Truncated bool
}
