package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/services"
	"github.com/SscSPs/bookstore_manager/internal/utils/reportfmt"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	sourceFlags
	periodFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the full financial summary" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary [-f <snapshot.json> | -owner <id>] [-month <YYYY-MM>] [-asof <date>]

  Displays the balance sheet, profit, receivables, payables and possible
  duplicate cash in one report.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.sourceFlags.setFlags(f)
	c.periodFlags.setFlags(f)
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := time.Now()
	period, err := c.query.Period(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	snap, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, err := services.BuildFinancialSummary(c.reconciler(), snap, period, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	summary.CurrencyCode = c.currencyCode(snap)

	printMarkdown(reportfmt.SummaryMarkdown(summary), c.plain)
	return subcommands.ExitSuccess
}
