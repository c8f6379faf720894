package renderer

import (
	"github.com/etnz/invoicer"
)

// Dashboard is the formatted business-overview view: the aggregate stat
// cards plus one row per stored invoice, in stored order. Row positions are
// the stored positions, so what the user sees is what a positional delete
// will remove.
type Dashboard struct {
	CompanyName    string
	TotalRevenue   string
	InvoiceCount   int
	AverageInvoice string
	Rows           []DashboardRow
}

// DashboardRow is one stored invoice, summarized.
type DashboardRow struct {
	Position  int
	Number    string
	Client    string
	IssueDate string
	Total     string
}

// NewDashboard builds the dashboard view from the company profile and the
// stored invoices, in the given display currency.
func NewDashboard(company invoicer.CompanyProfile, invoices []invoicer.Invoice, currency string) *Dashboard {
	summary := invoicer.Aggregate(invoices).In(currency)

	d := &Dashboard{
		CompanyName:    company.DisplayName(),
		TotalRevenue:   summary.TotalRevenue.String(),
		InvoiceCount:   summary.InvoiceCount,
		AverageInvoice: summary.AverageInvoice.String(),
	}
	for i, inv := range invoices {
		d.Rows = append(d.Rows, DashboardRow{
			Position:  i,
			Number:    inv.DisplayNumber(),
			Client:    inv.DisplayClient(),
			IssueDate: inv.IssueDate.String(),
			Total:     inv.Totals().Total.In(currency).String(),
		})
	}
	return d
}

// DashboardMarkdown renders the dashboard to a markdown string.
func DashboardMarkdown(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_stats":  "dashboard_stats.md",
		"dashboard_recent": "dashboard_recent.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// ListMarkdown renders the stored invoices as a plain positions table,
// without the stat cards.
func ListMarkdown(invoices []invoicer.Invoice, currency string) string {
	d := NewDashboard(invoicer.CompanyProfile{}, invoices, currency)
	return renderTemplate("list", "dashboard_recent.md", nil, d)
}
