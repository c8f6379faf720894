package invoicer

import "github.com/etnz/invoicer/date"

// Invoice aggregates the header fields of one invoice with its ordered line
// items. The invoice number is the natural key used when saving: it should
// be unique among stored invoices, but nothing enforces it.
//
// Item order is the insertion order from the editor. It is preserved
// verbatim: it matters for rendering, not for totals.
type Invoice struct {
	Number        string     `json:"invoiceNumber"`
	IssueDate     date.Date  `json:"issueDate"`
	DueDate       date.Date  `json:"dueDate"`
	ClientName    string     `json:"clientName"`
	ClientAddress string     `json:"clientAddress"`
	Notes         string     `json:"notes"`
	Items         []LineItem `json:"items"`
}

// NewInvoice returns an empty invoice issued today.
func NewInvoice(number string) Invoice {
	return Invoice{Number: number, IssueDate: date.Today()}
}

// DisplayNumber returns the invoice number, "-" when blank.
func (inv Invoice) DisplayNumber() string {
	if inv.Number == "" {
		return "-"
	}
	return inv.Number
}

// DisplayClient returns the client name, "Unknown" when blank.
func (inv Invoice) DisplayClient() string {
	if inv.ClientName == "" {
		return "Unknown"
	}
	return inv.ClientName
}

// Totals computes the invoice totals from its current items.
func (inv Invoice) Totals() Totals { return Compute(inv.Items) }
