package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/etnz/invoicer"
	"github.com/etnz/invoicer/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTML writes the invoice as a standalone HTML document: the renderer's
// markdown converted by goldmark and wrapped in a minimal page.
func HTML(w io.Writer, company invoicer.CompanyProfile, inv invoicer.Invoice, currency string) error {
	doc := renderer.NewInvoiceDocument(company, inv, currency)
	md := renderer.InvoiceMarkdown(doc)

	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("could not convert invoice markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w, page, html.EscapeString("Invoice "+doc.Number), body.String()); err != nil {
		return fmt.Errorf("could not write HTML: %w", err)
	}
	return nil
}

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.8rem; }
</style>
</head>
<body>
%s</body>
</html>
`
