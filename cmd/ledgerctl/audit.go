package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/SscSPs/bookstore_manager/internal/utils/reportfmt"
	"github.com/google/subcommands"
)

// auditCmd lists customer payments that duplicate a cash or bank sale.
type auditCmd struct {
	sourceFlags
	strict bool
}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "list customer payments that duplicate a cash sale" }
func (*auditCmd) Usage() string {
	return `ledgerctl audit [-f <snapshot.json> | -owner <id>] [-window <duration>] [-strict]

  Pairs every cash or bank sale with a paid customer payment for the same
  customer and amount. Those payments are left out of cash until a person
  resolves them.
`
}

func (c *auditCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.BoolVar(&c.strict, "strict", false, "Exit with status 1 when duplicates are found.")
}

func (c *auditCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.ValidateSnapshot(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	audit := ledger.BuildDuplicateAudit(c.reconciler().FindDuplicateCashEvents(snap.Sales, snap.Transactions))
	printMarkdown(reportfmt.DuplicateAuditMarkdown(audit, c.currencyCode(snap)), c.plain)

	if c.strict && len(audit.Pairs) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
