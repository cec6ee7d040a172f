package formslurper

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

/*
A Set is an ordered collection of header Items parsed from a raw header
block. Order is preserved from the block so callers that care about the
first occurrence of a header, like BoundaryExtractor, get deterministic
answers.
*/
type Set struct {
	HeaderItems []IItem
}

/*
NewHeaderSet parses a raw CRLF-delimited header block into a new Set
*/
func NewHeaderSet(headers string) (ISet, error) {
	result := &Set{
		HeaderItems: make([]IItem, 0, 5),
	}

	if err := result.ParseHeaderString(headers); err != nil {
		return nil, err
	}

	return result, nil
}

/*
Get returns the first header item whose key matches the provided name.
The match is case-insensitive. A name with no match returns a
MissingHeaderError.
*/
func (set *Set) Get(headerName string) (IItem, error) {
	for _, item := range set.HeaderItems {
		if strings.EqualFold(item.GetKey(), headerName) {
			return item, nil
		}
	}

	return nil, MissingHeader(headerName)
}

/*
ParseHeaderString unfolds a raw header block, splits it into lines, and
parses each line into an Item. Parsing stops at the first blank line, which
separates headers from body content.
*/
func (set *Set) ParseHeaderString(headers string) error {
	headers = set.UnfoldHeaders(headers)
	splitHeaders := strings.Split(headers, "\r\n")

	for _, header := range splitHeaders {
		if len(strings.TrimSpace(header)) == 0 {
			break
		}

		item := &Item{}

		if err := item.ParseHeaderString(header); err != nil {
			return errors.Wrapf(err, "Error parsing header")
		}

		set.HeaderItems = append(set.HeaderItems, item)
	}

	return nil
}

/*
ToMap converts this set of header items to a map of string value pairs
*/
func (set *Set) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, item := range set.HeaderItems {
		result[item.GetKey()] = item.GetValues()
	}

	return result
}

/*
UnfoldHeaders joins header continuation lines back onto their parent line.
A header value may span lines when follow-on lines begin with whitespace.
*/
func (set *Set) UnfoldHeaders(headers string) string {
	headerUnfolder := regexp.MustCompile("\r\n\\s+")
	return headerUnfolder.ReplaceAllString(headers, " ")
}

/*
UnfoldHeaders is the package-level variant of Set.UnfoldHeaders for callers
that have a raw block and no Set yet
*/
func UnfoldHeaders(headers string) string {
	set := &Set{}
	return set.UnfoldHeaders(headers)
}
