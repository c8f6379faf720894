package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/invoicer"
)

// JSON writes the raw (company, invoice, totals) triple. It is the
// machine-readable counterpart of the other formats, and the shape the
// import command's default mapping understands (under "invoice").
func JSON(w io.Writer, company invoicer.CompanyProfile, inv invoicer.Invoice, currency string) error {
	triple := struct {
		Company invoicer.CompanyProfile `json:"company"`
		Invoice invoicer.Invoice        `json:"invoice"`
		Totals  invoicer.Totals         `json:"totals"`
	}{
		Company: company,
		Invoice: inv,
		Totals:  inv.Totals().In(currency),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(triple); err != nil {
		return fmt.Errorf("could not write JSON: %w", err)
	}
	return nil
}
