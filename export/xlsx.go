package export

import (
	"fmt"
	"io"

	"github.com/etnz/invoicer"
	"github.com/etnz/invoicer/renderer"
	"github.com/xuri/excelize/v2"
)

const sheet = "Invoice"

// XLSX writes the invoice as a single-sheet spreadsheet.
func XLSX(w io.Writer, company invoicer.CompanyProfile, inv invoicer.Invoice, currency string) error {
	doc := renderer.NewInvoiceDocument(company, inv, currency)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	var err error
	row := 1
	set := func(col string, value any) {
		if err != nil {
			return
		}
		err = f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value)
	}

	set("A", doc.CompanyName)
	set("B", "Invoice "+doc.Number)
	row++
	set("A", doc.CompanyAddress)
	row++
	if doc.CompanyTaxID != "" {
		set("A", "Tax ID: "+doc.CompanyTaxID)
		row++
	}
	row++

	set("A", "Issue Date")
	set("B", doc.IssueDate)
	row++
	if doc.DueDate != "" {
		set("A", "Due Date")
		set("B", doc.DueDate)
		row++
	}
	set("A", "Bill To")
	set("B", doc.ClientName)
	row++
	if doc.ClientAddress != "" {
		set("B", doc.ClientAddress)
		row++
	}
	row++

	for i, h := range []string{"Description", "Qty", "Unit Price", "Tax", "Amount"} {
		set(string(rune('A'+i)), h)
	}
	row++
	for _, item := range doc.Items {
		set("A", item.Description)
		set("B", item.Quantity)
		set("C", item.UnitPrice)
		set("D", item.TaxRate)
		set("E", item.Amount)
		row++
	}
	row++

	for _, t := range []struct{ label, value string }{
		{"Subtotal", doc.Subtotal},
		{"Tax", doc.TaxAmount},
		{"Discount", doc.Discount},
		{"Total", doc.Total},
	} {
		set("D", t.label)
		set("E", t.value)
		row++
	}
	if doc.Notes != "" {
		row++
		set("A", "Notes")
		set("B", doc.Notes)
	}
	if err != nil {
		return fmt.Errorf("could not fill spreadsheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write XLSX: %w", err)
	}
	return nil
}
