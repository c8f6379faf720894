package invoicer

// Summary is the read-only dashboard projection over all stored invoices.
type Summary struct {
	TotalRevenue   Amount
	InvoiceCount   int
	AverageInvoice Amount
}

// Aggregate recomputes the dashboard summary from scratch.
//
// Revenue is each invoice's gross total (subtotal plus tax; the discount is
// always zero). With no invoices the average is a defined zero, never a
// division by zero.
func Aggregate(records []Invoice) Summary {
	var revenue Amount
	for _, inv := range records {
		t := Compute(inv.Items)
		revenue = revenue.Add(t.Subtotal).Add(t.TaxAmount)
	}
	s := Summary{TotalRevenue: revenue, InvoiceCount: len(records)}
	if s.InvoiceCount > 0 {
		s.AverageInvoice = revenue.Div(N(int64(s.InvoiceCount)))
	}
	return s
}

// In returns a copy of the summary carrying the given display currency.
func (s Summary) In(currency string) Summary {
	s.TotalRevenue = s.TotalRevenue.In(currency)
	s.AverageInvoice = s.AverageInvoice.In(currency)
	return s
}
