package printing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acme/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type capturingRenderer struct {
	req *RenderRequest
	err error
}

func (c *capturingRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	c.req = req
	if c.err != nil {
		return nil, c.err
	}
	return &RenderResult{PDFData: []byte("%PDF-1.7"), PageCount: 1}, nil
}

func (c *capturingRenderer) Close() error { return nil }

func sampleInvoice(locale language.Tag) *InvoiceDocument {
	return &InvoiceDocument{
		Code:             "IN-2024-0001",
		SponsorshipCode:  "SP-001",
		RegistrationTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		DueDate:          time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Quantity:         valueobject.MustMoney("100", valueobject.EUR),
		Tax:              decimal.NewFromInt(21),
		TotalAmount:      valueobject.MustMoney("121", valueobject.EUR),
		Link:             "https://example.com/in-2024-0001",
		Draft:            true,
		Locale:           locale,
	}
}

func TestInvoiceRenderer_RenderHTML(t *testing.T) {
	r := NewInvoiceRenderer(&capturingRenderer{})

	t.Run("english", func(t *testing.T) {
		html, err := r.RenderHTML(sampleInvoice(language.English))
		require.NoError(t, err)

		assert.Contains(t, html, `<html lang="en">`)
		assert.Contains(t, html, "Invoice IN-2024-0001")
		assert.Contains(t, html, "2024-05-01")
		assert.Contains(t, html, "21.00 %")
		assert.Contains(t, html, "Draft")
	})

	t.Run("spanish", func(t *testing.T) {
		html, err := r.RenderHTML(sampleInvoice(language.Spanish))
		require.NoError(t, err)

		assert.Contains(t, html, "Factura IN-2024-0001")
		assert.Contains(t, html, "Borrador")
	})

	t.Run("published invoices carry no draft mark", func(t *testing.T) {
		doc := sampleInvoice(language.English)
		doc.Draft = false
		html, err := r.RenderHTML(doc)
		require.NoError(t, err)

		assert.NotContains(t, html, `class="draft"`)
	})
}

func TestInvoiceRenderer_RenderInvoice(t *testing.T) {
	pdf := &capturingRenderer{}
	r := NewInvoiceRenderer(pdf)

	data, err := r.RenderInvoice(context.Background(), sampleInvoice(language.English))

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)
	require.NotNil(t, pdf.req)
	assert.Equal(t, PaperSizeA4, pdf.req.PaperSize)
	assert.Equal(t, "IN-2024-0001", pdf.req.Title)

	pdf.err = NewRenderError(ErrCodeRenderTimeout, "timed out", nil)
	_, err = r.RenderInvoice(context.Background(), sampleInvoice(language.English))
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, ErrCodeRenderTimeout, renderErr.Code)
}

func TestInvoiceRenderer_WithPaperSize(t *testing.T) {
	pdf := &capturingRenderer{}
	_, err := NewInvoiceRenderer(pdf, WithPaperSize(PaperSizeLetter)).RenderInvoice(context.Background(), sampleInvoice(language.English))
	require.NoError(t, err)
	assert.Equal(t, PaperSizeLetter, pdf.req.PaperSize)

	_, err = NewInvoiceRenderer(pdf, WithPaperSize("B5")).RenderInvoice(context.Background(), sampleInvoice(language.English))
	require.NoError(t, err)
	assert.Equal(t, PaperSizeA4, pdf.req.PaperSize)
}
