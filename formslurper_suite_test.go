package formslurper_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/adampresley/webframework/logging2"
)

var logger logging2.ILogger

func TestFormslurper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Formslurper Suite")
}

var _ = BeforeSuite(func() {
	logger = logging2.LogFactory(logging2.LOG_FORMAT_SIMPLE, "FormSlurper", logging2.INFO)
	logger.EnableColors()
})
