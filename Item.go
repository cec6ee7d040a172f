package formslurper

import (
	"strings"
)

/*
An Item is a single header entry, a key paired with one or more values.
Items come from splitting a raw header line on its first colon.
*/
type Item struct {
	Key    string
	Values []string
}

/*
NewItem creates a new Item with a key and a set of values
*/
func NewItem(key string, values []string) *Item {
	return &Item{
		Key:    key,
		Values: values,
	}
}

/*
GetKey returns this header item's key
*/
func (item *Item) GetKey() string {
	return item.Key
}

/*
GetValues returns the set of values attached to this header item
*/
func (item *Item) GetValues() []string {
	return item.Values
}

/*
ParseHeaderString splits a single unfolded header line into this item's key
and value. A line without a colon returns an InvalidHeaderError.
*/
func (item *Item) ParseHeaderString(header string) error {
	split := strings.SplitN(header, ":", 2)

	if len(split) < 2 {
		return InvalidHeader(header)
	}

	item.Key = strings.TrimSpace(split[0])
	item.Values = []string{strings.TrimSpace(split[1])}

	return nil
}
