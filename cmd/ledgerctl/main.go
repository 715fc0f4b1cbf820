// Command ledgerctl computes the bookstore's financial figures offline, from
// the database or from a JSON snapshot file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists every ledgerctl subcommand.
var Commands = []subcommands.Command{
	&auditCmd{},
	&balanceCmd{},
	&profitCmd{},
	&summaryCmd{},
}

func main() {
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
