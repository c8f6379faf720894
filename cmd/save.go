package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/invoicer"
	"github.com/etnz/invoicer/date"
	"github.com/google/subcommands"
)

// itemList collects repeated -item flags.
type itemList []invoicer.LineItem

func (l *itemList) String() string { return fmt.Sprintf("%d items", len(*l)) }

// Set parses one "description|quantity|unit price|tax %" spec. Missing
// parts default, and non-numeric parts read as zero.
func (l *itemList) Set(spec string) error {
	parts := strings.Split(spec, "|")
	item := invoicer.NewLineItem(parts[0])
	if len(parts) > 1 {
		item.Quantity = invoicer.ParseNumeric(parts[1])
	}
	if len(parts) > 2 {
		item.UnitPrice = invoicer.ParseNumeric(parts[2])
	}
	if len(parts) > 3 {
		item.TaxRate = invoicer.ParseNumeric(parts[3])
	}
	*l = append(*l, item)
	return nil
}

// saveCmd holds the flags for the 'save' subcommand.
type saveCmd struct {
	file    string
	number  string
	issue   string
	due     string
	client  string
	address string
	notes   string
	items   itemList
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save an invoice, updating it if the number is known" }
func (*saveCmd) Usage() string {
	return `ivg save -n <number> [-client <name>] [-item "desc|qty|price|tax"]...
ivg save -f <file.json>

  Saves an invoice. If an invoice with the same number is already stored it
  is replaced in place, otherwise the invoice is appended.

Usage Examples:
# Two items, the second untaxed.
$ ivg save -n INV-001 -client "Globex" -item "consulting|2|50|10" -item "shipping|1|30"

`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Read the invoice from a JSON file instead of flags")
	f.StringVar(&c.number, "n", "", "Invoice number, the natural key for updates")
	f.StringVar(&c.issue, "issue", "", "Issue date (defaults to today)")
	f.StringVar(&c.due, "due", "", "Due date")
	f.StringVar(&c.client, "client", "", "Client name")
	f.StringVar(&c.address, "client-address", "", "Client address")
	f.StringVar(&c.notes, "notes", "", "Notes (payment terms, bank details, ...)")
	f.Var(&c.items, "item", "Line item as \"description|quantity|unit price|tax %\" (repeatable)")
}

func (c *saveCmd) invoice() (invoicer.Invoice, error) {
	if c.file != "" {
		content, err := os.ReadFile(c.file)
		if err != nil {
			return invoicer.Invoice{}, fmt.Errorf("could not read %q: %w", c.file, err)
		}
		var inv invoicer.Invoice
		if err := json.Unmarshal(content, &inv); err != nil {
			return invoicer.Invoice{}, fmt.Errorf("could not parse %q: %w", c.file, err)
		}
		if inv.IssueDate.IsZero() {
			inv.IssueDate = date.Today()
		}
		return inv, nil
	}

	inv := invoicer.NewInvoice(c.number)
	var err error
	if c.issue != "" {
		if inv.IssueDate, err = date.Parse(c.issue); err != nil {
			return invoicer.Invoice{}, err
		}
	}
	if inv.DueDate, err = date.Parse(c.due); err != nil {
		return invoicer.Invoice{}, err
	}
	inv.ClientName = c.client
	inv.ClientAddress = c.address
	inv.Notes = c.notes
	inv.Items = c.items
	return inv, nil
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := c.invoice()
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

	invoices := invoicer.LoadInvoices(s)
	before := len(invoices)
	invoices = invoicer.SaveInvoice(invoices, inv)
	if err := invoicer.SaveInvoices(s, invoices); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving invoices: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(invoices) == before {
		fmt.Printf("Updated invoice %s (total %s)\n", inv.DisplayNumber(), inv.Totals().Total.In(currency()).String())
	} else {
		fmt.Printf("Saved invoice %s (total %s)\n", inv.DisplayNumber(), inv.Totals().Total.In(currency()).String())
	}
	return subcommands.ExitSuccess
}
