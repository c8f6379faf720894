package export

import (
	"fmt"
	"io"

	"github.com/etnz/invoicer"
	"github.com/etnz/invoicer/renderer"
	"github.com/jung-kurt/gofpdf"
)

// PDF writes the invoice as an A4 PDF document.
func PDF(w io.Writer, company invoicer.CompanyProfile, inv invoicer.Invoice, currency string) error {
	doc := renderer.NewInvoiceDocument(company, inv, currency)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header: company identity on the left, invoice number on the right.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(120, 8, doc.CompanyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Invoice "+doc.Number, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if doc.CompanyAddress != "" {
		pdf.MultiCell(120, 5, doc.CompanyAddress, "", "L", false)
	}
	if doc.CompanyTaxID != "" {
		pdf.CellFormat(120, 5, "Tax ID: "+doc.CompanyTaxID, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Dates and client block.
	pdf.CellFormat(95, 5, "Issue Date: "+doc.IssueDate, "", 0, "L", false, 0, "")
	if doc.DueDate != "" {
		pdf.CellFormat(95, 5, "Due Date: "+doc.DueDate, "", 1, "L", false, 0, "")
	} else {
		pdf.Ln(5)
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(190, 5, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(190, 5, doc.ClientName, "", 1, "L", false, 0, "")
	if doc.ClientAddress != "" {
		pdf.MultiCell(190, 5, doc.ClientAddress, "", "L", false)
	}
	pdf.Ln(4)

	// Items table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 6, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Tax", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Items {
		pdf.CellFormat(80, 6, row.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, row.Quantity, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, row.UnitPrice, "", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, row.TaxRate, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, row.Amount, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block, right-aligned.
	totals := []struct{ label, value string }{
		{"Subtotal", doc.Subtotal},
		{"Tax", doc.TaxAmount},
		{"Discount", doc.Discount},
		{"Total", doc.Total},
	}
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.CellFormat(150, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, row.value, "", 1, "R", false, 0, "")
	}

	if doc.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(190, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(190, 5, doc.Notes, "", "L", false)
	}
	if doc.Signature != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(190, 5, "Signed: "+doc.Signature, "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not write PDF: %w", err)
	}
	return nil
}
