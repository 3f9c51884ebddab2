// Package printing renders business documents to PDF.
//
// Documents are produced in two steps: an html/template turns the document
// data into HTML, then a PDFRenderer prints the HTML. ChromedpRenderer drives
// a headless Chrome over the DevTools protocol.
//
//	renderer, err := NewChromedpRenderer(&ChromedpConfig{NoSandbox: true})
//	if err != nil {
//	    return err
//	}
//	invoices := NewInvoiceRenderer(renderer)
//	pdf, err := invoices.RenderInvoice(ctx, doc)
package printing
