package cmd

import "testing"

func TestItemListSet(t *testing.T) {
	var items itemList

	if err := items.Set("consulting|2|50|10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := items.Set("shipping|1|30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Lenient parts: malformed quantity counts as zero, missing parts default.
	if err := items.Set("misc|abc|10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := items.Set("bare"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}
	if items[0].Description != "consulting" || items[0].TaxRate.String() != "10" {
		t.Errorf("got %+v", items[0])
	}
	if got := items[1].Amount().Fixed(); got != "30.00" {
		t.Errorf("got %q, want \"30.00\"", got)
	}
	if got := items[2].Amount().Fixed(); got != "0.00" {
		t.Errorf("malformed quantity must zero the line, got %q", got)
	}
	// A bare description keeps the editor defaults: one unit, free, untaxed.
	if items[3].Quantity.String() != "1" || !items[3].UnitPrice.IsZero() {
		t.Errorf("got %+v", items[3])
	}
}
