package invoicepage

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/massmux/sli-invoice/internal/invoice"
	"github.com/massmux/sli-invoice/internal/str"
	log "github.com/sirupsen/logrus"
)

// copyResetMillis is how long the copy button shows "Copied!".
const copyResetMillis = 2500

//go:embed static
var templates embed.FS
var page_tmpl = template.Must(template.ParseFS(templates, "static/invoice.html"))

type Service struct {
	artifacts invoice.Artifacts
	image     string
	load      func(invoice.Artifacts) (*invoice.Invoice, error)
}

// New returns a Service rendering the invoice found at artifacts. image is the
// public URL of the QR code and ends up verbatim in the page.
func New(artifacts invoice.Artifacts, image string) Service {
	return Service{
		artifacts: artifacts,
		image:     image,
		load:      invoice.Load,
	}
}

type pageData struct {
	Image           string
	Amount          string
	Details         template.HTML
	Summary         *invoice.Summary
	CopyResetMillis int
}

// Render writes the invoice page, or the "no invoice" page when the artifacts
// are not both present or can not be read.
func (s Service) Render(w io.Writer) error {
	inv, err := s.load(s.artifacts)
	if err != nil {
		log.Debugf("[InvoicePage] rendering fallback page: %v", err)
		return page_tmpl.ExecuteTemplate(w, "missing", nil)
	}
	log.Infof("[InvoicePage] rendering invoice page (%s)", inv.Amount)
	return page_tmpl.ExecuteTemplate(w, "invoice", pageData{
		Image:           s.image,
		Amount:          inv.Amount,
		Details:         template.HTML(str.StripMarkup(inv.Details)),
		Summary:         inv.Summary,
		CopyResetMillis: copyResetMillis,
	})
}

func (s Service) InvoicePageHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		log.Errorf("[InvoicePage] failed to render template: %v", err)
	}
	w.Header().Set("Content-Type", "text/html")
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("[InvoicePage] failed to write response: %v", err)
	}
}
