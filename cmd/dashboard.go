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

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the business overview" }
func (*dashboardCmd) Usage() string {
	return `ivg dashboard

  Displays total revenue, the number of invoices, the average invoice
  value, and the stored invoices. Everything is recomputed from the store
  on each run.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	company := invoicer.LoadCompany(s)
	invoices := invoicer.LoadInvoices(s)
	printMarkdown(renderer.DashboardMarkdown(renderer.NewDashboard(company, invoices, currency())))
	return subcommands.ExitSuccess
}
