package formslurper

/*
A Boundary holds the delimiter token from a multipart/form-data Content-Type
header and the two byte templates derived from it. The separator template
marks the line between parts and the terminator template marks the final
line of the body. Both templates are the same length, which is what lets a
single MatchBuffer test for either one.
*/
type Boundary struct {
	Token string

	separator  []byte
	terminator []byte
}

/*
NewBoundary derives the separator and terminator templates from a token
*/
func NewBoundary(token string) *Boundary {
	return &Boundary{
		Token:      token,
		separator:  []byte("--" + token + "\r\n"),
		terminator: []byte("--" + token + "--"),
	}
}

/*
Separator returns the boundary line template used between parts
*/
func (boundary *Boundary) Separator() []byte {
	return boundary.separator
}

/*
Terminator returns the boundary line template that ends the body
*/
func (boundary *Boundary) Terminator() []byte {
	return boundary.terminator
}

/*
TemplateLength returns the shared length of both templates
*/
func (boundary *Boundary) TemplateLength() int {
	return len(boundary.separator)
}
