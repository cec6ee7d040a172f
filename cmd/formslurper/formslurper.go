package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adampresley/webframework/logging2"
	"github.com/formslurper/formslurper"
)

const (
	// Version of the FormSlurper tool
	VERSION string = "1.0.0"
)

var logger logging2.ILogger

func main() {
	var err error
	var contents []byte

	fileName := flag.String("file", "", "Path to a raw dump: header block, a blank line, then the multipart body")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logLevel := logging2.INFO
	if *debug {
		logLevel = logging2.DEBUG
	}

	logger = logging2.LogFactory(logging2.LOG_FORMAT_SIMPLE, "FormSlurper", logLevel)
	logger.EnableColors()
	logger.Infof("Starting FormSlurper v%s", VERSION)

	if *fileName == "" {
		logger.Errorf("Please provide a dump file with -file")
		os.Exit(-1)
	}

	if contents, err = os.ReadFile(*fileName); err != nil {
		logger.Errorf("There was an error reading the dump file '%s': %s", *fileName, err.Error())
		os.Exit(-1)
	}

	/*
	 * The dump format mirrors the wire: headers, a blank line,
	 * then the body bytes untouched.
	 */
	split := strings.SplitN(string(contents), "\r\n\r\n", 2)
	if len(split) < 2 {
		logger.Errorf("Expected the dump to contain a header section and a body section")
		os.Exit(-1)
	}

	var headers formslurper.ISet
	if headers, err = formslurper.NewHeaderSet(split[0]); err != nil {
		logger.Errorf("There was an error parsing the header block: %s", err.Error())
		os.Exit(-1)
	}

	var result *formslurper.ScanResult
	if result, err = formslurper.ParseFormData([]byte(split[1]), headers, logger); err != nil {
		logger.Errorf("There was an error scanning the body: %s", err.Error())
		os.Exit(-1)
	}

	if result.Truncated {
		logger.Errorf("The scan was truncated; output below is incomplete")
	}

	for index, part := range result.Parts {
		fmt.Printf("Part %d: name=%q filename=%q contentType=%q (%d bytes)\n",
			index+1, part.GetName(), part.GetFileName(), part.GetContentType(), len(part.GetBody()))
	}
}
