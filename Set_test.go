package formslurper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSet(t *testing.T) {
	Convey("A Set of header items can be unfolded", t, func() {
		set := &Set{}
		headers := "Content-Type: multipart/form-data;\r\n boundary=abcd\r\nContent-Length: 120\r\nX-Forwarded-For: This is\r\n a test\r\n"

		expected := "Content-Type: multipart/form-data; boundary=abcd\r\nContent-Length: 120\r\nX-Forwarded-For: This is a test\r\n"
		actual := set.UnfoldHeaders(headers)

		So(actual, ShouldEqual, expected)
	})

	Convey("Parsing a set of headers", t, func() {
		Convey("with an invalid header will return an error", func() {
			headers := "Content-Type: multipart/form-data\r\nContent-Length 120\r\n"
			_, err := NewHeaderSet(headers)
			expected := "Error parsing header"

			So(err.Error(), ShouldContainSubstring, expected)
		})

		Convey("creates an ordered array of Item structures", func() {
			headers := "Content-Type: multipart/form-data;\r\n boundary=abcd\r\nContent-Length: 120\r\nX-Forwarded-For: This is\r\n a test\r\n"
			actual, _ := NewHeaderSet(headers)
			expected := &Set{
				HeaderItems: []IItem{
					&Item{"Content-Type", []string{"multipart/form-data; boundary=abcd"}},
					&Item{"Content-Length", []string{"120"}},
					&Item{"X-Forwarded-For", []string{"This is a test"}},
				},
			}

			So(actual, ShouldResemble, expected)
		})

		Convey("stops at the blank line before body content", func() {
			headers := "Content-Type: text/plain\r\n\r\nThis is body content"
			actual, err := NewHeaderSet(headers)
			expected := &Set{
				HeaderItems: []IItem{
					&Item{"Content-Type", []string{"text/plain"}},
				},
			}

			So(err, ShouldBeNil)
			So(actual, ShouldResemble, expected)
		})
	})

	Convey("Getting a header by name", t, func() {
		set, _ := NewHeaderSet("Content-Type: multipart/form-data; boundary=abcd\r\nContent-Length: 120\r\n")

		Convey("using a valid header name returns the header item", func() {
			expected := &Item{
				Key:    "Content-Length",
				Values: []string{"120"},
			}

			match, err := set.Get("content-length")
			So(err, ShouldBeNil)

			actual := match.(*Item)
			So(actual, ShouldResemble, expected)
		})

		Convey("using an invalid header name returns an error", func() {
			expected := MissingHeader("bob")
			match, err := set.Get("bob")

			So(match, ShouldBeNil)
			So(err, ShouldResemble, expected)
		})
	})

	Convey("Set can be converted to a map", t, func() {
		set, _ := NewHeaderSet("Content-Type: multipart/form-data; boundary=abcd\r\nContent-Length: 120\r\n")

		expected := map[string][]string{
			"Content-Type":   []string{"multipart/form-data; boundary=abcd"},
			"Content-Length": []string{"120"},
		}
		actual := set.ToMap()

		So(actual, ShouldResemble, expected)
	})
}
