package invoicer

// LineItem is one billable row on an invoice: a description, a quantity, a
// unit price, and a tax rate in percent (0 means untaxed).
//
// The three numeric fields are Numeric on purpose: values typed or imported
// as non-numbers silently read as zero instead of failing the whole record.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    Numeric `json:"quantity"`
	UnitPrice   Numeric `json:"unitPrice"`
	TaxRate     Numeric `json:"taxRate"`
}

// Amount returns the line amount, quantity times unit price.
// It is derived, never stored.
func (it LineItem) Amount() Amount {
	return Amount{value: it.Quantity.value.Mul(it.UnitPrice.value)}
}

// UnitAmount returns the unit price as a monetary amount.
func (it LineItem) UnitAmount() Amount {
	return Amount{value: it.UnitPrice.value}
}

// NewLineItem returns a line item with the editor defaults: one unit of a
// free item, untaxed.
func NewLineItem(description string) LineItem {
	return LineItem{Description: description, Quantity: N(1)}
}
