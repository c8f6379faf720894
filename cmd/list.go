package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invoicer"
	"github.com/etnz/invoicer/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the stored invoices with their positions" }
func (*listCmd) Usage() string {
	return `ivg list

  Lists the stored invoices in stored order. The printed positions are the
  ones 'delete' operates on.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.ListMarkdown(invoicer.LoadInvoices(s), currency()))
	return subcommands.ExitSuccess
}
