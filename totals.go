package invoicer

// Totals are the derived figures for one invoice. They are recomputed from
// the items whenever they are needed and never persisted on their own.
//
// Discount is reserved for a future discount feature: it is always zero but
// always present, so downstream consumers can already rely on the field.
type Totals struct {
	Subtotal  Amount
	TaxAmount Amount
	Discount  Amount
	Total     Amount
}

// Compute derives the totals for an ordered sequence of line items.
//
// It is a pure function: no side effects, and safe on any input including
// an empty or nil sequence (all-zero totals). Accumulation is exact decimal
// arithmetic; rounding to two decimals happens only when the amounts are
// formatted.
func Compute(items []LineItem) Totals {
	var subtotal, tax Amount
	hundred := N(100)
	for _, it := range items {
		line := it.Amount()
		subtotal = subtotal.Add(line)
		tax = tax.Add(line.Mul(it.TaxRate).Div(hundred))
	}
	var discount Amount
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Discount:  discount,
		Total:     subtotal.Add(tax).Sub(discount),
	}
}

// In returns a copy of the totals carrying the given display currency.
func (t Totals) In(currency string) Totals {
	return Totals{
		Subtotal:  t.Subtotal.In(currency),
		TaxAmount: t.TaxAmount.In(currency),
		Discount:  t.Discount.In(currency),
		Total:     t.Total.In(currency),
	}
}

func (t Totals) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("subtotal", t.Subtotal.Fixed())
	w.Append("taxAmount", t.TaxAmount.Fixed())
	w.Append("discount", t.Discount.Fixed())
	w.Append("total", t.Total.Fixed())
	return w.MarshalJSON()
}
