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

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "preview one invoice in the terminal" }
func (*showCmd) Usage() string {
	return `ivg show <invoice-number>

  Renders the invoice as it will appear on the exported document, with the
  totals computed from its current items.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	number := f.Arg(0)

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	inv, ok := findInvoice(invoicer.LoadInvoices(s), number)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no invoice %q\n", number)
		return subcommands.ExitFailure
	}

	company := invoicer.LoadCompany(s)
	printMarkdown(renderer.InvoiceMarkdown(renderer.NewInvoiceDocument(company, inv, currency())))
	return subcommands.ExitSuccess
}

// findInvoice returns the first stored invoice with the given number,
// mirroring the first-match rule used when saving.
func findInvoice(invoices []invoicer.Invoice, number string) (invoicer.Invoice, bool) {
	for _, inv := range invoices {
		if inv.Number == number {
			return inv, true
		}
	}
	return invoicer.Invoice{}, false
}
