package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/invoicer"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete the invoice at a position" }
func (*deleteCmd) Usage() string {
	return `ivg delete <position>

  Deletes the invoice at the given position, as printed by 'list'. The
  deletion is immediate and irreversible.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid position %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	invoices := invoicer.LoadInvoices(s)
	if index < 0 || index >= len(invoices) {
		fmt.Fprintf(os.Stderr, "Error: position %d out of range, %d invoices stored\n", index, len(invoices))
		return subcommands.ExitFailure
	}

	removed := invoices[index]
	if err := invoicer.SaveInvoices(s, invoicer.DeleteAt(invoices, index)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving invoices: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted invoice %s at position %d\n", removed.DisplayNumber(), index)
	return subcommands.ExitSuccess
}
