package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"invoicing-backend/models"
	"invoicing-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invoiceEntity = "Invoice"

type InvoiceController struct {
	store    *services.Store
	renderer *services.InvoiceRenderer
	logger   *zap.Logger
}

func NewInvoiceController(store *services.Store, renderer *services.InvoiceRenderer, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{store: store, renderer: renderer, logger: logger}
}

// TotalsInput defines the expected JSON structure for a totals preview
type TotalsInput struct {
	Items models.InvoiceItemInputs `json:"items" binding:"dive"`
}

// GetInvoices lists invoices, filtered by the customerId, status,
// startDate, endDate and q query parameters
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	filter := models.InvoiceFilter{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Search:    c.Query("q"),
	}
	if raw := c.Query("customerId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			// no customer has a non-numeric id
			c.JSON(http.StatusOK, []models.Invoice{})
			return
		}
		filter.CustomerID = &id
	}

	invoices, err := ic.store.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a single invoice by ID
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := parseID(c, invoiceEntity)
	if !ok {
		return
	}
	invoice, err := ic.store.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice creates a new invoice; totals are computed from its items
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input models.InvoiceInput
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := ic.store.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice updates the provided fields of an invoice
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c, invoiceEntity)
	if !ok {
		return
	}
	var input models.InvoicePatch
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := ic.store.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c, invoiceEntity)
	if !ok {
		return
	}
	if err := ic.store.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetInvoiceDefaults returns a prefilled form for a new invoice
func (ic *InvoiceController) GetInvoiceDefaults(c *gin.Context) {
	defaults, err := ic.store.InvoiceDefaults(c.Request.Context())
	if err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}

// CalculateTotals previews the totals of a set of invoice lines
func (ic *InvoiceController) CalculateTotals(c *gin.Context) {
	var input TotalsInput
	if !bindJSON(c, &input) {
		return
	}
	items := make([]models.InvoiceItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, it.ToItem())
	}
	c.JSON(http.StatusOK, services.ComputeTotals(items))
}

// PrintInvoice renders the invoice as a printable HTML page
func (ic *InvoiceController) PrintInvoice(c *gin.Context) {
	id, ok := parseID(c, invoiceEntity)
	if !ok {
		return
	}
	doc, err := ic.store.InvoiceDocument(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}

	var buf bytes.Buffer
	if err := ic.renderer.Render(&buf, doc); err != nil {
		respondStoreError(c, ic.logger, invoiceEntity, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
