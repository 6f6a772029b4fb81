package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerline"
	"github.com/etnz/ledgerline/renderer"
	"github.com/google/subcommands"
)

type reviewCmd struct {
	id         string
	strategy   string
	alternates int
}

func (*reviewCmd) Name() string { return "review" }
func (*reviewCmd) Synopsis() string {
	return "decode a single transaction and display the decision for review"
}
func (*reviewCmd) Usage() string {
	return `lld review [-t <transaction_id>] [-strategy <name>]

  Decodes one transaction from the requests file and renders the full
  decision as markdown: chosen lines, ranked alternative allocations, and
  the per-candidate scores retained for audit.

Usage Examples:
# Review the first transaction of the requests file.
$ lld review

# Review a specific transaction with the combinatorial balancer.
$ lld review -t 2026-04-12-007 -strategy combinatorial

`
}

func (p *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "t", "", "Transaction to review. Defaults to the first one.")
	f.StringVar(&p.strategy, "strategy", "", "Override the request's strategy (greedy, combinatorial).")
	f.IntVar(&p.alternates, "alternates", ledgerline.DefaultMaxAlternates, "Maximum number of ranked alternative allocations.")
}

func (p *reviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs, err := DecodeRequestsFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(reqs) == 0 {
		fmt.Fprintln(os.Stderr, "the requests file is empty")
		return subcommands.ExitFailure
	}

	req := reqs[0]
	if p.id != "" {
		found := false
		for _, r := range reqs {
			if r.ID == p.id {
				req, found = r, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "no transaction %q in %q\n", p.id, *requestsFile)
			return subcommands.ExitFailure
		}
	}

	if p.strategy != "" {
		name, err := ledgerline.ParseStrategyName(p.strategy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		req.Strategy = name
	}

	decoder := ledgerline.NewDecoder()
	decoder.MaxAlternates = p.alternates
	decision, err := decoder.Decode(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DecisionMarkdown(req, decision))
	return subcommands.ExitSuccess
}
