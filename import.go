package invoicer

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/invoicer/date"
)

// ImportMapping maps invoice fields to jsonpath expressions evaluated
// against a third-party JSON export. Header paths are evaluated against the
// whole document; item paths against each element of the Items path.
//
// An empty path leaves the field at its default. Numeric fields follow the
// usual coercion rule: anything unparseable reads as zero.
type ImportMapping struct {
	Number        string `yaml:"number"`
	IssueDate     string `yaml:"issueDate"`
	DueDate       string `yaml:"dueDate"`
	ClientName    string `yaml:"clientName"`
	ClientAddress string `yaml:"clientAddress"`
	Notes         string `yaml:"notes"`
	Items         string `yaml:"items"`
	Description   string `yaml:"description"`
	Quantity      string `yaml:"quantity"`
	UnitPrice     string `yaml:"unitPrice"`
	TaxRate       string `yaml:"taxRate"`
}

// DefaultImportMapping matches the shape this application itself persists.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Number:        "$.invoiceNumber",
		IssueDate:     "$.issueDate",
		DueDate:       "$.dueDate",
		ClientName:    "$.clientName",
		ClientAddress: "$.clientAddress",
		Notes:         "$.notes",
		Items:         "$.items",
		Description:   "$.description",
		Quantity:      "$.quantity",
		UnitPrice:     "$.unitPrice",
		TaxRate:       "$.taxRate",
	}
}

// ImportInvoice extracts one invoice from an arbitrary JSON document using
// the mapping's jsonpath expressions.
//
// Only a document that is not JSON at all, or a date that is present but
// malformed, is an error. Missing fields default, and non-numeric values
// in numeric fields coerce to zero.
func ImportInvoice(doc []byte, m ImportMapping) (Invoice, error) {
	var root any
	if err := json.Unmarshal(doc, &root); err != nil {
		return Invoice{}, fmt.Errorf("could not parse import document: %w", err)
	}

	inv := Invoice{Number: lookupString(root, m.Number)}

	var err error
	if inv.IssueDate, err = lookupDate(root, m.IssueDate); err != nil {
		return Invoice{}, fmt.Errorf("invalid issue date: %w", err)
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = date.Today()
	}
	if inv.DueDate, err = lookupDate(root, m.DueDate); err != nil {
		return Invoice{}, fmt.Errorf("invalid due date: %w", err)
	}
	inv.ClientName = lookupString(root, m.ClientName)
	inv.ClientAddress = lookupString(root, m.ClientAddress)
	inv.Notes = lookupString(root, m.Notes)

	for _, elem := range lookupList(root, m.Items) {
		inv.Items = append(inv.Items, LineItem{
			Description: lookupString(elem, m.Description),
			Quantity:    lookupNumeric(elem, m.Quantity),
			UnitPrice:   lookupNumeric(elem, m.UnitPrice),
			TaxRate:     lookupNumeric(elem, m.TaxRate),
		})
	}
	return inv, nil
}

// lookup evaluates a jsonpath expression, nil when the path is empty,
// unresolvable, or matches nothing.
func lookup(root any, path string) any {
	if path == "" {
		return nil
	}
	val, err := jsonpath.Get(path, root)
	if err != nil {
		return nil
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if list, ok := val.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		val = list[0]
	}
	return val
}

func lookupString(root any, path string) string {
	switch v := lookup(root, path).(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func lookupNumeric(root any, path string) Numeric {
	switch v := lookup(root, path).(type) {
	case float64:
		return N(v)
	case string:
		return ParseNumeric(v)
	default:
		return Numeric{}
	}
}

func lookupDate(root any, path string) (date.Date, error) {
	return date.Parse(lookupString(root, path))
}

// lookupList evaluates the items path, expecting a JSON array.
func lookupList(root any, path string) []any {
	if path == "" {
		return nil
	}
	val, err := jsonpath.Get(path, root)
	if err != nil {
		return nil
	}
	list, _ := val.([]any)
	return list
}
