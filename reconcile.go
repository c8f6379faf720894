package invoicer

// SaveInvoice reconciles a candidate invoice against the stored sequence.
//
// The first record whose number equals the candidate's (exact, case
// sensitive) is replaced in place; when there is no match the candidate is
// appended, so new invoices accumulate in creation order. The candidate is
// never rejected: an invoice with no items or blank fields saves as-is.
//
// Records sharing a number all match each other (including blank numbers);
// only the first is ever reachable for update.
func SaveInvoice(existing []Invoice, candidate Invoice) []Invoice {
	for i, inv := range existing {
		if inv.Number == candidate.Number {
			result := make([]Invoice, len(existing))
			copy(result, existing)
			result[i] = candidate
			return result
		}
	}
	result := make([]Invoice, 0, len(existing)+1)
	result = append(result, existing...)
	return append(result, candidate)
}

// DeleteAt removes the record at the given position, shifting later records
// down by one. Deletion is positional, not by invoice number: callers must
// present invoices in stored order so the position designates the record the
// user saw.
//
// The index must be in range; callers validate it first.
func DeleteAt(existing []Invoice, index int) []Invoice {
	result := make([]Invoice, 0, len(existing)-1)
	result = append(result, existing[:index]...)
	return append(result, existing[index+1:]...)
}
