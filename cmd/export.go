package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invoicer"
	"github.com/etnz/invoicer/export"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export one invoice as a document" }
func (*exportCmd) Usage() string {
	return `ivg export [-format pdf|xlsx|html|json] [-o <file>] <invoice-number>

  Writes a downloadable artifact for the invoice. The totals are computed
  from the items at the moment of export.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "pdf", "Artifact format: pdf, xlsx, html, or json")
	f.StringVar(&c.output, "o", "", "Output file (default <number>.<format>)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	number := f.Arg(0)

	exporter, err := export.For(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

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

	path := c.output
	if path == "" {
		name := inv.Number
		if name == "" {
			name = "invoice"
		}
		path = name + "." + c.format
	}
	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := exporter(file, company, inv, currency()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting invoice: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported invoice %s to %s\n", inv.DisplayNumber(), path)
	return subcommands.ExitSuccess
}
