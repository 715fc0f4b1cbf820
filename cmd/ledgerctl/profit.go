package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/utils/reportfmt"
	"github.com/google/subcommands"
)

// periodFlags selects report months the same way the API does.
type periodFlags struct {
	query dto.ReportPeriodQuery
}

func (p *periodFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&p.query.Month, "month", "", "Single month, YYYY-MM. Defaults to the current month.")
	f.StringVar(&p.query.From, "from", "", "First month, YYYY-MM. Requires -to.")
	f.StringVar(&p.query.To, "to", "", "Last month, YYYY-MM. Requires -from.")
}

type profitCmd struct {
	sourceFlags
	periodFlags
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display gross profit, net profit and net result" }
func (*profitCmd) Usage() string {
	return `ledgerctl profit [-f <snapshot.json> | -owner <id>] [-month <YYYY-MM> | -from <YYYY-MM> -to <YYYY-MM>]

  Gross profit is revenue minus production cost of the books sold. Net profit
  subtracts expenses. Net result adds donations back.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	c.sourceFlags.setFlags(f)
	c.periodFlags.setFlags(f)
}

func (c *profitCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := c.query.Period(time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	snap, err := c.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := ledger.ComputeProfitReport(snap, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(reportfmt.ProfitMarkdown(report, c.currencyCode(snap)), c.plain)
	return subcommands.ExitSuccess
}
