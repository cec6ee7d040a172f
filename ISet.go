package formslurper

/*
An ISet is an ordered collection of header items. The order is the order in
which the headers appeared in the raw header block; Get returns the first
case-insensitive key match.
*/
type ISet interface {
	Get(headerName string) (IItem, error)
	ParseHeaderString(headers string) error
	ToMap() map[string][]string
	UnfoldHeaders(headers string) string
}
