package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/bookstore_manager/internal/utils/reportfmt"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	sourceFlags
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance sheet" }
func (*balanceCmd) Usage() string {
	return `ledgerctl balance [-f <snapshot.json> | -owner <id>] [-asof <date>] [-opening-cash <amount>] [-opening-bank <amount>]

  Displays cash, bank, receivables, stock and office assets against payables.
  The opening overrides replace the stored opening balances for this run only.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	r := c.reconciler()
	sheet, err := r.BuildBalanceSheet(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cash, err := r.ComputeCashAndBank(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(reportfmt.BalanceSheetMarkdown(sheet, cash.ExcludedDuplicates, c.currencyCode(snap)), c.plain)
	return subcommands.ExitSuccess
}
