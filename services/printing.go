package services

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownCustomer stands in for a customer that has been deleted.
const UnknownCustomer = "Unknown customer"

//go:embed templates/invoice.html
var templateFS embed.FS

// InvoiceDocument is everything printed on an invoice.
type InvoiceDocument struct {
	Invoice  models.Invoice
	Customer *models.Customer // nil when the customer no longer exists
	Settings models.Settings
	Today    string
}

// InvoiceDocument loads an invoice together with its customer and the
// company settings.
func (s *Store) InvoiceDocument(ctx context.Context, id int) (*InvoiceDocument, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	doc := &InvoiceDocument{Invoice: *invoice, Settings: *settings, Today: s.Today()}
	customer, err := s.GetCustomer(ctx, invoice.CustomerID)
	switch {
	case err == nil:
		doc.Customer = customer
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	return doc, nil
}

// InvoiceRenderer renders printable HTML invoices.
type InvoiceRenderer struct {
	tmpl     *template.Template
	currency string
}

func NewInvoiceRenderer(currencySymbol string) (*InvoiceRenderer, error) {
	r := &InvoiceRenderer{currency: currencySymbol}

	tmpl, err := template.New("invoice.html").Funcs(template.FuncMap{
		"money":    r.money,
		"number":   formatNumber,
		"longDate": utils.LongDate,
		"title":    titleCase,
		"logo":     safeLogoURL,
	}).ParseFS(templateFS, "templates/invoice.html")
	if err != nil {
		return nil, fmt.Errorf("parse invoice template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

type printLine struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxRate     float64
	Amount      float64
}

type printView struct {
	Title        string
	Invoice      models.Invoice
	Status       string
	Customer     *models.Customer
	CustomerName string
	Settings     models.Settings
	Lines        []printLine
}

// Render writes doc as a standalone A4 HTML page.
func (r *InvoiceRenderer) Render(w io.Writer, doc *InvoiceDocument) error {
	view := printView{
		Title:        "Invoice-" + doc.Invoice.InvoiceNumber,
		Invoice:      doc.Invoice,
		Status:       doc.Invoice.DisplayStatus(doc.Today),
		Customer:     doc.Customer,
		CustomerName: UnknownCustomer,
		Settings:     doc.Settings,
	}
	if doc.Customer != nil {
		view.CustomerName = doc.Customer.Name
	}
	for _, item := range doc.Invoice.Items {
		view.Lines = append(view.Lines, printLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Amount:      LineAmount(item).Add(LineTax(item)).InexactFloat64(),
		})
	}
	return r.tmpl.Execute(w, view)
}

func (r *InvoiceRenderer) money(v float64) string {
	return r.currency + decimal.NewFromFloat(v).StringFixed(2)
}

// Casers are stateful; each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// safeLogoURL lets http(s) links and inline images through the template
// escaper and drops anything else.
func safeLogoURL(raw string) template.URL {
	u := strings.TrimSpace(raw)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "data:image/") {
		return template.URL(u)
	}
	return ""
}
