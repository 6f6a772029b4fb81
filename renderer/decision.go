// Package renderer renders decode decisions as markdown for terminal review.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ledgerline"
)

// DecisionMarkdown renders a full decision report: the chosen lines, the
// ranked alternative allocations, and the audit scores.
func DecisionMarkdown(req ledgerline.DecodeRequest, d *ledgerline.Decision) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transaction %s\n\n", req.ID)
	if req.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", req.Description)
	}
	total := ledgerline.NewAmount(req.Total, req.Currency)
	fmt.Fprintf(&b, "Total **%s**, decoded with `%s`.\n\n", total, d.Debug.DecoderUsed)

	b.WriteString("## Lines\n\n")
	writeLines(&b, req.Currency, d.Primary)

	if len(d.Alternates) > 0 {
		b.WriteString("## Alternates\n\n")
		for i, alt := range d.Alternates {
			fmt.Fprintf(&b, "### Alternate %d\n\n", i+1)
			writeLines(&b, req.Currency, alt)
		}
	}

	b.WriteString("## Scores\n\n")
	writeScores(&b, ledgerline.Debit, d.Debug.DebitScores)
	writeScores(&b, ledgerline.Credit, d.Debug.CreditScores)
	return b.String()
}

// writeLines renders one allocation as a markdown table, debits first.
func writeLines(b *strings.Builder, currency string, lines []ledgerline.Allocation) {
	b.WriteString("| Side | Account | Amount |\n")
	b.WriteString("|---|---|---:|\n")
	for _, side := range ledgerline.Sides {
		for _, l := range lines {
			if l.Side != side {
				continue
			}
			amount := ledgerline.NewAmount(l.Amount, currency)
			fmt.Fprintf(b, "| %s | %s | %s |\n", l.Side, l.Account, amount)
		}
	}
	b.WriteString("\n")
}

// writeScores renders the per-candidate probabilities of one side.
func writeScores(b *strings.Builder, side ledgerline.Side, scores map[ledgerline.AccountID]float64) {
	if len(scores) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**: ", side)
	for i, id := range sortedAccounts(scores) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s %.3f", id, scores[id])
	}
	b.WriteString("\n\n")
}
