package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
)

// Invoice statuses. StatusOverdue is derived from the due date and never
// stored.
const (
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Invoice is a bill for one customer. Subtotal, Tax and Total are derived
// from Items and stored alongside them.
type Invoice struct {
	ID            int                              `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CustomerID    int                              `json:"customerId" gorm:"index;not null"`
	InvoiceNumber string                           `json:"invoiceNumber" gorm:"not null"`
	Date          string                           `json:"date" gorm:"column:invoice_date;index;not null"`
	DueDate       string                           `json:"dueDate" gorm:"column:due_date;not null"`
	Status        string                           `json:"status" gorm:"index;not null"`
	Subtotal      float64                          `json:"subtotal"`
	Tax           float64                          `json:"tax"`
	Total         float64                          `json:"total"`
	Notes         string                           `json:"notes,omitempty" gorm:"type:text"`
	Items         datatypes.JSONSlice[InvoiceItem] `json:"items"`
}

func (i *Invoice) SetID(id int) { i.ID = id }

// IsOverdue reports whether a pending invoice is past its due date. today
// and DueDate are YYYY-MM-DD strings, so they compare lexicographically.
func (i *Invoice) IsOverdue(today string) bool {
	return i.Status == StatusPending && i.DueDate != "" && i.DueDate < today
}

// DisplayStatus returns the stored status, or StatusOverdue when the
// invoice is overdue.
func (i *Invoice) DisplayStatus(today string) string {
	if i.IsOverdue(today) {
		return StatusOverdue
	}
	return i.Status
}

// InvoiceItem is one line of an invoice. UnitPrice is the price of a single
// unit; the line amount is Quantity * UnitPrice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate"`
}

// InvoiceItemInput defines the expected JSON structure for an invoice line
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    *Number `json:"quantity" binding:"required,min=1"`
	UnitPrice   *Number `json:"unitPrice" binding:"required,min=0"`
	TaxRate     *Number `json:"taxRate" binding:"omitempty,min=0,max=100"`
}

func (in InvoiceItemInput) ToItem() InvoiceItem {
	return InvoiceItem{
		Description: in.Description,
		Quantity:    numberValue(in.Quantity),
		UnitPrice:   numberValue(in.UnitPrice),
		TaxRate:     numberValue(in.TaxRate),
	}
}

// InvoiceItemInputs is the items list of an invoice request. Decoding
// failures name the offending line.
type InvoiceItemInputs []InvoiceItemInput

func (l *InvoiceItemInputs) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}
	items := make(InvoiceItemInputs, len(raw))
	for i, elem := range raw {
		if err := json.Unmarshal(elem, &items[i]); err != nil {
			return &ItemDecodeError{Index: i, Err: err}
		}
	}
	*l = items
	return nil
}

// ItemDecodeError wraps a decoding failure inside one element of an
// invoice's items list.
type ItemDecodeError struct {
	Index int
	Err   error
}

func (e *ItemDecodeError) Error() string {
	return fmt.Sprintf("items[%d]: %v", e.Index, e.Err)
}

func (e *ItemDecodeError) Unwrap() error { return e.Err }

// FieldPrefix is the dotted path of the failing line, e.g. "items.1".
func (e *ItemDecodeError) FieldPrefix() string {
	return "items." + strconv.Itoa(e.Index)
}

// InvoiceInput defines the expected JSON structure for creating an invoice.
// Totals may be omitted; when present they must agree with the items.
type InvoiceInput struct {
	CustomerID    *Int              `json:"customerId" binding:"required"`
	InvoiceNumber string            `json:"invoiceNumber" binding:"required"`
	Date          string            `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate       string            `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Status        string            `json:"status" binding:"required,oneof=draft pending paid"`
	Subtotal      *Number           `json:"subtotal"`
	Tax           *Number           `json:"tax"`
	Total         *Number           `json:"total"`
	Notes         string            `json:"notes"`
	Items         InvoiceItemInputs `json:"items" binding:"required,min=1,dive"`
}

// InvoicePatch defines the expected JSON structure for updating an invoice
type InvoicePatch struct {
	CustomerID    *Int               `json:"customerId"`
	InvoiceNumber *string            `json:"invoiceNumber" binding:"omitempty,min=1"`
	Date          *string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       *string            `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Status        *string            `json:"status" binding:"omitempty,oneof=draft pending paid"`
	Subtotal      *Number            `json:"subtotal"`
	Tax           *Number            `json:"tax"`
	Total         *Number            `json:"total"`
	Notes         *string            `json:"notes"`
	Items         *InvoiceItemInputs `json:"items" binding:"omitempty,min=1,dive"`
}

// Totals holds the derived money fields of an invoice.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// SuppliedTotals carries totals sent by a client; nil means not sent.
type SuppliedTotals struct {
	Subtotal *Number
	Tax      *Number
	Total    *Number
}

func (s SuppliedTotals) Any() bool {
	return s.Subtotal != nil || s.Tax != nil || s.Total != nil
}

func (in InvoiceInput) ToInvoice() Invoice {
	inv := Invoice{
		InvoiceNumber: in.InvoiceNumber,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Status:        in.Status,
		Notes:         in.Notes,
		Items:         toItems(in.Items),
	}
	if in.CustomerID != nil {
		inv.CustomerID = int(*in.CustomerID)
	}
	return inv
}

func (in InvoiceInput) Totals() SuppliedTotals {
	return SuppliedTotals{Subtotal: in.Subtotal, Tax: in.Tax, Total: in.Total}
}

func (p InvoicePatch) Totals() SuppliedTotals {
	return SuppliedTotals{Subtotal: p.Subtotal, Tax: p.Tax, Total: p.Total}
}

// Apply merges the provided fields over inv. A provided items list replaces
// the stored one entirely. Totals are left to the caller.
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.CustomerID != nil {
		inv.CustomerID = int(*p.CustomerID)
	}
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = *p.InvoiceNumber
	}
	if p.Date != nil {
		inv.Date = *p.Date
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}
	if p.Items != nil {
		inv.Items = toItems(*p.Items)
	}
}

func toItems(in []InvoiceItemInput) datatypes.JSONSlice[InvoiceItem] {
	items := make(datatypes.JSONSlice[InvoiceItem], 0, len(in))
	for _, it := range in {
		items = append(items, it.ToItem())
	}
	return items
}

// InvoiceFilter narrows an invoice listing. Zero values match everything.
type InvoiceFilter struct {
	CustomerID *int
	Status     string
	StartDate  string
	EndDate    string
	// Search matches the invoice number or the customer name, ignoring case.
	Search     string
}
