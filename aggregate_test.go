package invoicer

import "testing"

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got.InvoiceCount != 0 {
		t.Errorf("got count %d, want 0", got.InvoiceCount)
	}
	if got.TotalRevenue.Fixed() != "0.00" {
		t.Errorf("got revenue %q, want \"0.00\"", got.TotalRevenue.Fixed())
	}
	// Zero invoices must yield a defined zero average, not a division by zero.
	if got.AverageInvoice.Fixed() != "0.00" {
		t.Errorf("got average %q, want \"0.00\"", got.AverageInvoice.Fixed())
	}
}

func TestAggregate(t *testing.T) {
	one := NewInvoice("INV-001")
	one.Items = []LineItem{{Quantity: N(2), UnitPrice: N(50), TaxRate: N(10)}} // 100 + 10 tax
	two := NewInvoice("INV-002")
	two.Items = []LineItem{{Quantity: N(1), UnitPrice: N(30)}} // 30, untaxed

	got := Aggregate([]Invoice{one, two})

	if got.InvoiceCount != 2 {
		t.Errorf("got count %d, want 2", got.InvoiceCount)
	}
	// Revenue is gross: subtotal plus tax.
	if want := "140.00"; got.TotalRevenue.Fixed() != want {
		t.Errorf("got revenue %q, want %q", got.TotalRevenue.Fixed(), want)
	}
	if want := "70.00"; got.AverageInvoice.Fixed() != want {
		t.Errorf("got average %q, want %q", got.AverageInvoice.Fixed(), want)
	}
}
