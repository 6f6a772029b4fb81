package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ledgerline/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Bash/zsh completion. Complete() exits by itself when invoked by the
	// shell completion machinery, and is a no-op otherwise.
	completion().Complete("lld")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	strategies := predict.Set{"greedy", "combinatorial"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"requests-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"decode": {Flags: map[string]complete.Predictor{
				"o":             predict.Files("*.jsonl"),
				"strategy":      strategies,
				"alternates":    predict.Something,
				"solve-timeout": predict.Something,
			}},
			"review": {Flags: map[string]complete.Predictor{
				"t":          predict.Something,
				"strategy":   strategies,
				"alternates": predict.Something,
			}},
			"fmt": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.jsonl"),
			}},
			"topic": {},
		},
	}
}
