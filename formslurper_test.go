package formslurper_test

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/formslurper/formslurper"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Formslurper", func() {
	Describe("Round-tripping a body built by a standard multipart writer", func() {
		var buffer *bytes.Buffer
		var names []string
		var bodies []string

		const boundary = "roundtripboundary"

		BeforeEach(func() {
			buffer = &bytes.Buffer{}
			names = []string{}
			bodies = []string{}

			writer := multipart.NewWriter(buffer)
			writer.SetBoundary(boundary)

			for index := 0; index < 5; index++ {
				name := fmt.Sprintf("field%d", index)
				content := fmt.Sprintf("content number %d", index)

				field, err := writer.CreateFormField(name)
				Expect(err).To(BeNil())

				field.Write([]byte(content))

				names = append(names, name)
				bodies = append(bodies, content)
			}

			writer.Close()
		})

		It("returns the same names in the same order with byte-identical bodies", func() {
			result, err := formslurper.ParseFormDataWithBoundary(buffer.Bytes(), boundary, logger)

			Expect(err).To(BeNil())
			Expect(result.Truncated).To(BeFalse())
			Expect(len(result.Parts)).To(Equal(len(names)))

			for index, part := range result.Parts {
				Expect(part.GetName()).To(Equal(names[index]))
				Expect(part.GetBody()).To(Equal(bodies[index]))
			}
		})
	})

	Describe("Parsing against a raw header collection", func() {
		var body string

		BeforeEach(func() {
			body = "--BOUND\r\n" +
				"Content-Disposition: form-data; name=\"file\"; filename=\"x.txt\"\r\n" +
				"Content-Type: text/plain\r\n" +
				"\r\n" +
				"hello\r\n" +
				"--BOUND--"
		})

		Context("whose content type is multipart/form-data", func() {
			It("extracts the boundary and returns the parts", func() {
				headers, err := formslurper.NewHeaderSet("Content-Type: multipart/form-data; boundary=BOUND\r\n")
				Expect(err).To(BeNil())

				result, err := formslurper.ParseFormData([]byte(body), headers, logger)

				Expect(err).To(BeNil())
				Expect(len(result.Parts)).To(Equal(1))
				Expect(result.Parts[0].GetName()).To(Equal("file"))
				Expect(result.Parts[0].GetFileName()).To(Equal("x.txt"))
				Expect(result.Parts[0].GetContentType()).To(Equal("text/plain"))
				Expect(result.Parts[0].GetBody()).To(Equal("hello"))
			})
		})

		Context("whose content type is something else", func() {
			It("returns a NotMultipartError so the caller can fall back", func() {
				headers, err := formslurper.NewHeaderSet("Content-Type: text/plain\r\n")
				Expect(err).To(BeNil())

				result, err := formslurper.ParseFormData([]byte(body), headers, logger)

				Expect(result).To(BeNil())
				Expect(err).To(Equal(formslurper.NotMultipart("text/plain")))
			})
		})
	})
})
