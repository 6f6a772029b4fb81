// Package cmd implements the CLI application to decode transactions into
// balanced bookkeeping lines.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerline"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&decodeCmd{}, "decoding")
	c.Register(&reviewCmd{}, "decoding")

	c.Register(&fmtCmd{}, "requests")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var requestsFile = flag.String("requests-file", "requests.jsonl", "Path to the decode requests file (JSONL format)")

// DecodeRequestsFile reads the app requests file.
func DecodeRequestsFile() ([]ledgerline.DecodeRequest, error) {
	f, err := os.Open(*requestsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open requests file %q: %w", *requestsFile, err)
	}
	defer f.Close()
	reqs, err := ledgerline.DecodeRequests(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read requests file %q: %w", *requestsFile, err)
	}
	return reqs, nil
}
