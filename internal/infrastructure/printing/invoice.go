package printing

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/acme/backend/internal/infrastructure/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// InvoiceDocument is the data printed on an invoice
type InvoiceDocument struct {
	Code             string
	SponsorshipCode  string
	RegistrationTime time.Time
	DueDate          time.Time
	Quantity         valueobject.Money
	Tax              decimal.Decimal
	TotalAmount      valueobject.Money
	Link             string
	Draft            bool
	Locale           language.Tag
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
<meta charset="UTF-8">
<title>{{ .Doc.Code }}</title>
<style>
body { font-family: sans-serif; font-size: 11pt; color: #222; }
h1 { font-size: 18pt; margin-bottom: 4mm; }
table { width: 100%; border-collapse: collapse; }
td { padding: 2mm 0; border-bottom: 1px solid #ddd; }
td.value { text-align: right; }
tr.total td { font-weight: bold; border-bottom: none; }
.draft { color: #b00; text-transform: uppercase; letter-spacing: 1px; }
</style>
</head>
<body>
<h1>{{ t "printing.invoice.title" }} {{ .Doc.Code }}</h1>
{{ if .Doc.Draft }}<p class="draft">{{ t "printing.invoice.draft" }}</p>{{ end }}
<table>
<tr><td>{{ t "printing.invoice.sponsorship" }}</td><td class="value">{{ .Doc.SponsorshipCode }}</td></tr>
<tr><td>{{ t "printing.invoice.registration-time" }}</td><td class="value">{{ date .Doc.RegistrationTime }}</td></tr>
<tr><td>{{ t "printing.invoice.due-date" }}</td><td class="value">{{ date .Doc.DueDate }}</td></tr>
<tr><td>{{ t "printing.invoice.quantity" }}</td><td class="value">{{ .Doc.Quantity }}</td></tr>
<tr><td>{{ t "printing.invoice.tax" }}</td><td class="value">{{ .Doc.Tax.StringFixed 2 }} %</td></tr>
<tr class="total"><td>{{ t "printing.invoice.total" }}</td><td class="value">{{ .Doc.TotalAmount }}</td></tr>
</table>
{{ if .Doc.Link }}<p><a href="{{ .Doc.Link }}">{{ .Doc.Link }}</a></p>{{ end }}
</body>
</html>`

// InvoiceRenderer prints invoices through a PDFRenderer
type InvoiceRenderer struct {
	pdf       PDFRenderer
	paperSize PaperSize
}

// InvoiceRendererOption configures an InvoiceRenderer
type InvoiceRendererOption func(*InvoiceRenderer)

// WithPaperSize prints on size instead of A4. Invalid sizes are ignored.
func WithPaperSize(size PaperSize) InvoiceRendererOption {
	return func(r *InvoiceRenderer) {
		if size.IsValid() {
			r.paperSize = size
		}
	}
}

// NewInvoiceRenderer creates an InvoiceRenderer printing on A4 by default
func NewInvoiceRenderer(pdf PDFRenderer, opts ...InvoiceRendererOption) *InvoiceRenderer {
	r := &InvoiceRenderer{pdf: pdf, paperSize: PaperSizeA4}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderHTML produces the invoice markup in the document's locale
func (r *InvoiceRenderer) RenderHTML(doc *InvoiceDocument) (string, error) {
	locale := doc.Locale
	if locale == language.Und {
		locale = language.English
	}

	tmpl, err := template.New("invoice").Funcs(template.FuncMap{
		"t":    func(key string) string { return i18n.Translate(locale, key) },
		"date": func(t time.Time) string { return t.Format("2006-01-02") },
	}).Parse(invoiceTemplate)
	if err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "invalid invoice template", err)
	}

	var buf bytes.Buffer
	data := struct {
		Lang string
		Doc  *InvoiceDocument
	}{Lang: locale.String(), Doc: doc}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to execute invoice template", err)
	}
	return buf.String(), nil
}

// RenderInvoice produces the invoice PDF
func (r *InvoiceRenderer) RenderInvoice(ctx context.Context, doc *InvoiceDocument) ([]byte, error) {
	html, err := r.RenderHTML(doc)
	if err != nil {
		return nil, err
	}
	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:      html,
		Title:     doc.Code,
		PaperSize: r.paperSize,
		Margins:   DefaultMargins(),
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}
