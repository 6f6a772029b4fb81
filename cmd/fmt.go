package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerline"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the requests file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `lld fmt [-o <output_file>]

  Validates and formats the requests file. This command reads all requests,
  checks them, assigns an id to requests that lack one, and writes them back
  in a canonical JSONL format with stable key order.
  By default, it formats the requests file in-place.

Usage Examples:
# Rewrites the default requests file.
$ lld fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file. Defaults to rewriting the requests file in-place.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs, err := DecodeRequestsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load requests: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid request %q: %v\n", req.ID, err)
			return subcommands.ExitFailure
		}
		if err := ledgerline.EncodeRequest(&buf, reqs[i]); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting request %q: %v\n", req.ID, err)
			return subcommands.ExitFailure
		}
	}

	target := p.outputFile
	if target == "" {
		target = *requestsFile
	}
	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted requests: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d requests.\n", len(reqs))
	return subcommands.ExitSuccess
}
