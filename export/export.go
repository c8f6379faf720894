// Package export produces downloadable artifacts (PDF, XLSX, HTML, JSON)
// from a finalized invoice.
//
// Every exporter receives the (company, invoice) pair and derives the
// totals at the moment of export, so the figures in the artifact always
// match the items.
package export

import (
	"fmt"
	"io"

	"github.com/etnz/invoicer"
)

// Exporter writes one artifact for an invoice.
type Exporter func(w io.Writer, company invoicer.CompanyProfile, inv invoicer.Invoice, currency string) error

// Formats maps the user-facing format names to their exporters.
func Formats() map[string]Exporter {
	return map[string]Exporter{
		"pdf":  PDF,
		"xlsx": XLSX,
		"html": HTML,
		"json": JSON,
	}
}

// For returns the exporter for a format name.
func For(format string) (Exporter, error) {
	e, ok := Formats()[format]
	if !ok {
		return nil, fmt.Errorf("unknown export format %q", format)
	}
	return e, nil
}
