package invoicer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value. Arithmetic stays on the unrounded
// decimal value; rounding to two digits happens only when formatting.
type Amount struct {
	value decimal.Decimal
	cur   string
}

func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

// currency returns the amount's currency, never nil.
func (a Amount) currency() money.Currency {
	return *money.New(0, a.cur).Currency()
}

func (a Amount) Currency() string    { return a.cur }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) IsZero() bool        { return a.value.IsZero() }

func (a Amount) Mul(n Numeric) Amount { return Amount{value: a.value.Mul(n.value), cur: a.cur} }
func (a Amount) Div(n Numeric) Amount { return Amount{value: a.value.Div(n.value), cur: a.cur} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value), cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value), cur: cur(a, b)} }

// In returns a copy of the amount carrying the given display currency.
func (a Amount) In(currency string) Amount { return Amount{value: a.value, cur: currency} }

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Fixed returns the plain two-decimal representation, e.g. "130.00".
// Rounding is decimal half-up.
func (a Amount) Fixed() string { return a.value.StringFixed(2) }

// String returns the currency-formatted representation, e.g. "$130.00".
func (a Amount) String() string {
	c := a.currency()
	dec := a.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.Round(0).IntPart())
}
