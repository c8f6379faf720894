package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invoicer"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	mapping string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import an invoice from a JSON document" }
func (*importCmd) Usage() string {
	return `ivg import [-mapping <mapping.yaml>] <file.json>

  Reads one invoice out of a JSON document and saves it like 'save' would.
  The default mapping understands a bare invoice object as ivg stores it;
  a mapping file of jsonpath expressions adapts any other shape
  (see 'ivg topic importing').
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mapping, "mapping", "", "YAML file of jsonpath field mappings")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	mapping := invoicer.DefaultImportMapping()
	if c.mapping != "" {
		content, err := os.ReadFile(c.mapping)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading mapping %q: %v\n", c.mapping, err)
			return subcommands.ExitFailure
		}
		if err := yaml.Unmarshal(content, &mapping); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing mapping %q: %v\n", c.mapping, err)
			return subcommands.ExitFailure
		}
	}

	doc, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	inv, err := invoicer.ImportInvoice(doc, mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	invoices := invoicer.SaveInvoice(invoicer.LoadInvoices(s), inv)
	if err := invoicer.SaveInvoices(s, invoices); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving invoices: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported invoice %s (%d items, total %s)\n",
		inv.DisplayNumber(), len(inv.Items), inv.Totals().Total.In(currency()).String())
	return subcommands.ExitSuccess
}
