package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/ledgerline"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type decodeCmd struct {
	outputFile string
	strategy   string
	alternates int
	timeout    time.Duration
	quiet      bool
}

func (*decodeCmd) Name() string { return "decode" }
func (*decodeCmd) Synopsis() string {
	return "decode a batch of scored transactions into balanced bookkeeping lines"
}
func (*decodeCmd) Usage() string {
	return `lld decode [-o <output_file>] [-strategy <name>] [-alternates <n>]

  Reads the requests file, decodes every transaction in parallel, and writes
  one result per line in JSONL format. A transaction that cannot be decoded
  produces an error record; it never aborts the batch.

Usage Examples:
# Decode requests.jsonl to stdout.
$ lld decode

# Force the combinatorial balancer for the whole batch.
$ lld decode -strategy combinatorial -o decisions.jsonl

`
}

func (p *decodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file for decisions (JSONL). Defaults to stdout.")
	f.StringVar(&p.strategy, "strategy", "", "Override the per-request strategy (greedy, combinatorial).")
	f.IntVar(&p.alternates, "alternates", ledgerline.DefaultMaxAlternates, "Maximum number of ranked alternative allocations per decision.")
	f.DurationVar(&p.timeout, "solve-timeout", ledgerline.DefaultSolveTimeout, "Time budget for one combinatorial solve before falling back.")
	f.BoolVar(&p.quiet, "q", false, "Do not log per-transaction failures and fallbacks.")
}

func (p *decodeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs, err := DecodeRequestsFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.strategy != "" {
		name, err := ledgerline.ParseStrategyName(p.strategy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for i := range reqs {
			reqs[i].Strategy = name
		}
	}

	log := zerolog.Nop()
	if !p.quiet {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	decoder := ledgerline.NewDecoder()
	decoder.MaxAlternates = p.alternates
	decoder.SolveTimeout = p.timeout
	results := decoder.DecodeAll(ctx, log, reqs)

	out := os.Stdout
	if p.outputFile != "" {
		var err error
		out, err = os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", p.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := ledgerline.EncodeResults(out, results); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d transactions failed to decode\n", failed, len(results))
	}
	return subcommands.ExitSuccess
}
