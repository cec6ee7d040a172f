package formslurper

/*
IItem represents a single protocol header entry in the form of "Key: Value".
A header set hands these to BoundaryExtractor, which only ever consults the
Content-Type entry.
*/
type IItem interface {
	GetKey() string
	GetValues() []string
	ParseHeaderString(header string) error
}
