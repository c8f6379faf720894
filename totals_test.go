package invoicer

import (
	"encoding/json"
	"testing"
)

func fixed(t Totals) [4]string {
	return [4]string{t.Subtotal.Fixed(), t.TaxAmount.Fixed(), t.Discount.Fixed(), t.Total.Fixed()}
}

func TestComputeEmpty(t *testing.T) {
	want := [4]string{"0.00", "0.00", "0.00", "0.00"}
	if got := fixed(Compute(nil)); got != want {
		t.Errorf("Compute(nil) = %v, want %v", got, want)
	}
	if got := fixed(Compute([]LineItem{})); got != want {
		t.Errorf("Compute([]) = %v, want %v", got, want)
	}
}

func TestCompute(t *testing.T) {
	// 2 × 50 at 10% tax, plus 1 × 30 untaxed.
	items := []LineItem{
		{Description: "consulting", Quantity: N(2), UnitPrice: N(50), TaxRate: N(10)},
		{Description: "shipping", Quantity: N(1), UnitPrice: N(30)},
	}
	got := fixed(Compute(items))
	want := [4]string{"130.00", "10.00", "0.00", "140.00"}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComputeMalformedQuantity(t *testing.T) {
	// A non-numeric quantity contributes nothing, to neither subtotal nor tax.
	var it LineItem
	if err := json.Unmarshal([]byte(`{"description":"x","quantity":"abc","unitPrice":10,"taxRate":5}`), &it); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := fixed(Compute([]LineItem{it}))
	want := [4]string{"0.00", "0.00", "0.00", "0.00"}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComputeOrderIndependent(t *testing.T) {
	a := LineItem{Quantity: N(3), UnitPrice: N(19.99), TaxRate: N(20)}
	b := LineItem{Quantity: N(1), UnitPrice: N(0.01)}
	c := LineItem{Quantity: N(7), UnitPrice: N(12.34), TaxRate: N(5.5)}

	forward := Compute([]LineItem{a, b, c})
	backward := Compute([]LineItem{c, b, a})
	if fixed(forward) != fixed(backward) {
		t.Errorf("totals depend on item order: %v vs %v", fixed(forward), fixed(backward))
	}
}

func TestComputeUnroundedAccumulation(t *testing.T) {
	// Three lines of 0.333 each: rounding must happen after the sum
	// (0.999 → "1.00"), not per line (3 × "0.33" would give "0.99").
	it := LineItem{Quantity: N(1), UnitPrice: ParseNumeric("0.333")}
	got := Compute([]LineItem{it, it, it})
	if want := "1.00"; got.Subtotal.Fixed() != want {
		t.Errorf("got %q, want %q", got.Subtotal.Fixed(), want)
	}
}

func TestTotalsJSON(t *testing.T) {
	b, err := json.Marshal(Compute(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"subtotal":"0.00","taxAmount":"0.00","discount":"0.00","total":"0.00"}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestTotalsDisplayCurrency(t *testing.T) {
	items := []LineItem{{Quantity: N(2), UnitPrice: N(50), TaxRate: N(10)}}
	got := Compute(items).In("USD")
	if want := "$110.00"; got.Total.String() != want {
		t.Errorf("got %q, want %q", got.Total.String(), want)
	}
}
