package invoicer

import "testing"

func numbers(invoices []Invoice) []string {
	var ns []string
	for _, inv := range invoices {
		ns = append(ns, inv.Number)
	}
	return ns
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSaveInvoiceAppends(t *testing.T) {
	existing := []Invoice{NewInvoice("INV-001")}
	got := SaveInvoice(existing, NewInvoice("INV-002"))
	if want := []string{"INV-001", "INV-002"}; !equalStrings(numbers(got), want) {
		t.Errorf("got %v, want %v", numbers(got), want)
	}
}

func TestSaveInvoiceReplacesInPlace(t *testing.T) {
	existing := []Invoice{NewInvoice("INV-001"), NewInvoice("INV-002"), NewInvoice("INV-003")}

	candidate := NewInvoice("INV-002")
	candidate.ClientName = "Acme"
	got := SaveInvoice(existing, candidate)

	if want := []string{"INV-001", "INV-002", "INV-003"}; !equalStrings(numbers(got), want) {
		t.Errorf("got %v, want %v", numbers(got), want)
	}
	if got[1].ClientName != "Acme" {
		t.Errorf("record at position 1 was not replaced: %+v", got[1])
	}
}

func TestSaveInvoiceTwiceKeepsOne(t *testing.T) {
	// Saving the same number twice leaves exactly one record, holding the
	// latest content.
	first := NewInvoice("INV-001")
	first.ClientName = "Alice"
	second := NewInvoice("INV-001")
	second.ClientName = "Bob"

	invoices := SaveInvoice(nil, first)
	invoices = SaveInvoice(invoices, second)

	if len(invoices) != 1 {
		t.Fatalf("got %d records, want 1", len(invoices))
	}
	if invoices[0].ClientName != "Bob" {
		t.Errorf("got client %q, want %q", invoices[0].ClientName, "Bob")
	}
}

func TestSaveInvoiceMatchIsCaseSensitive(t *testing.T) {
	existing := []Invoice{NewInvoice("inv-001")}
	got := SaveInvoice(existing, NewInvoice("INV-001"))
	if len(got) != 2 {
		t.Errorf("got %d records, want 2: case must not fold", len(got))
	}
}

func TestSaveInvoiceFirstMatchWins(t *testing.T) {
	// Duplicate numbers are not rejected; only the first is reachable.
	dup1, dup2 := NewInvoice("INV-001"), NewInvoice("INV-001")
	dup1.ClientName, dup2.ClientName = "first", "second"

	candidate := NewInvoice("INV-001")
	candidate.ClientName = "updated"
	got := SaveInvoice([]Invoice{dup1, dup2}, candidate)

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ClientName != "updated" || got[1].ClientName != "second" {
		t.Errorf("got clients %q, %q; want %q, %q", got[0].ClientName, got[1].ClientName, "updated", "second")
	}
}

func TestSaveInvoiceDoesNotMutateInput(t *testing.T) {
	existing := []Invoice{NewInvoice("INV-001")}
	candidate := NewInvoice("INV-001")
	candidate.ClientName = "changed"
	SaveInvoice(existing, candidate)
	if existing[0].ClientName != "" {
		t.Error("SaveInvoice mutated its input sequence")
	}
}

func TestDeleteAt(t *testing.T) {
	invoices := []Invoice{NewInvoice("INV-001"), NewInvoice("INV-002"), NewInvoice("INV-003")}

	t.Run("first", func(t *testing.T) {
		got := DeleteAt(invoices, 0)
		if want := []string{"INV-002", "INV-003"}; !equalStrings(numbers(got), want) {
			t.Errorf("got %v, want %v", numbers(got), want)
		}
	})
	t.Run("middle", func(t *testing.T) {
		got := DeleteAt(invoices, 1)
		if want := []string{"INV-001", "INV-003"}; !equalStrings(numbers(got), want) {
			t.Errorf("got %v, want %v", numbers(got), want)
		}
	})
	t.Run("last", func(t *testing.T) {
		got := DeleteAt(invoices, 2)
		if want := []string{"INV-001", "INV-002"}; !equalStrings(numbers(got), want) {
			t.Errorf("got %v, want %v", numbers(got), want)
		}
	})
	t.Run("only", func(t *testing.T) {
		got := DeleteAt([]Invoice{NewInvoice("INV-001")}, 0)
		if len(got) != 0 {
			t.Errorf("got %v, want empty", numbers(got))
		}
	})
}

func TestSaveThenDeleteScenario(t *testing.T) {
	// Save INV-001 then INV-002, delete position 0: only INV-002 remains,
	// now at position 0.
	invoices := SaveInvoice(nil, NewInvoice("INV-001"))
	invoices = SaveInvoice(invoices, NewInvoice("INV-002"))
	invoices = DeleteAt(invoices, 0)

	if want := []string{"INV-002"}; !equalStrings(numbers(invoices), want) {
		t.Errorf("got %v, want %v", numbers(invoices), want)
	}
}
