package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invoicer"
	"github.com/google/subcommands"
)

// companyCmd holds the flags for the 'company' subcommand.
type companyCmd struct {
	name      string
	address   string
	taxID     string
	logo      string
	signature string
}

func (*companyCmd) Name() string     { return "company" }
func (*companyCmd) Synopsis() string { return "show or update the company profile" }
func (*companyCmd) Usage() string {
	return `ivg company [-name <name>] [-address <address>] [-tax-id <id>] [-logo <ref>] [-signature <ref>]

  Without flags, shows the stored company profile. With flags, updates the
  given fields and overwrites the profile wholesale.
`
}

func (c *companyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Company name")
	f.StringVar(&c.address, "address", "", "Company address")
	f.StringVar(&c.taxID, "tax-id", "", "Tax identifier printed on invoices")
	f.StringVar(&c.logo, "logo", "", "Logo image reference (path or URL)")
	f.StringVar(&c.signature, "signature", "", "Signature image reference (path or URL)")
}

func (c *companyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	company := invoicer.LoadCompany(s)

	edited := false
	f.Visit(func(fl *flag.Flag) {
		edited = true
		switch fl.Name {
		case "name":
			company.Name = c.name
		case "address":
			company.Address = c.address
		case "tax-id":
			company.TaxID = c.taxID
		case "logo":
			company.Logo = c.logo
		case "signature":
			company.Signature = c.signature
		}
	})

	if edited {
		if err := invoicer.SaveCompany(s, company); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving company profile: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Company: %s\n", company.DisplayName())
	if company.Address != "" {
		fmt.Printf("Address: %s\n", company.Address)
	}
	if company.TaxID != "" {
		fmt.Printf("Tax ID:  %s\n", company.TaxID)
	}
	if company.Logo != "" {
		fmt.Printf("Logo:    %s\n", company.Logo)
	}
	if company.Signature != "" {
		fmt.Printf("Signed:  %s\n", company.Signature)
	}
	return subcommands.ExitSuccess
}
