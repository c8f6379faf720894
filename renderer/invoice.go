package renderer

import (
	"github.com/etnz/invoicer"
)

// InvoiceDocument is the fully formatted view of one invoice: the triple
// (company, invoice, totals) flattened into display strings. The totals are
// computed from the items at construction time, so the document is always
// internally consistent.
type InvoiceDocument struct {
	CompanyName    string
	CompanyAddress string
	CompanyTaxID   string
	Logo           string
	Signature      string

	Number        string
	IssueDate     string
	DueDate       string
	ClientName    string
	ClientAddress string
	Notes         string

	Items []ItemRow

	Subtotal  string
	TaxAmount string
	Discount  string
	Total     string
}

// ItemRow is one formatted line item.
type ItemRow struct {
	Description string
	Quantity    string
	UnitPrice   string
	TaxRate     string
	Amount      string
}

// NewInvoiceDocument builds the document for an invoice in the given
// display currency.
func NewInvoiceDocument(company invoicer.CompanyProfile, inv invoicer.Invoice, currency string) *InvoiceDocument {
	totals := inv.Totals().In(currency)

	doc := &InvoiceDocument{
		CompanyName:    company.DisplayName(),
		CompanyAddress: company.Address,
		CompanyTaxID:   company.TaxID,
		Logo:           company.Logo,
		Signature:      company.Signature,

		Number:        inv.DisplayNumber(),
		IssueDate:     inv.IssueDate.String(),
		DueDate:       inv.DueDate.String(),
		ClientName:    inv.DisplayClient(),
		ClientAddress: inv.ClientAddress,
		Notes:         inv.Notes,

		Subtotal:  totals.Subtotal.String(),
		TaxAmount: totals.TaxAmount.String(),
		Discount:  totals.Discount.String(),
		Total:     totals.Total.String(),
	}

	for _, it := range inv.Items {
		doc.Items = append(doc.Items, ItemRow{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitAmount().In(currency).String(),
			TaxRate:     it.TaxRate.String() + "%",
			Amount:      it.Amount().In(currency).String(),
		})
	}
	return doc
}

// InvoiceMarkdown renders the document to a markdown string.
func InvoiceMarkdown(doc *InvoiceDocument) string {
	partials := map[string]string{
		"invoice_parties": "invoice_parties.md",
		"invoice_items":   "invoice_items.md",
		"invoice_totals":  "invoice_totals.md",
		"invoice_footer":  "invoice_footer.md",
	}
	return renderTemplate("invoice", "invoice.md", partials, doc)
}
