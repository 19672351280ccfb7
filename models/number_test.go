package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"10"`, 10},
		{"padded string", `" 3.25 "`, 3.25},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"negative", `-4`, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, float64(n))
		})
	}
}

func TestNumber_UnmarshalJSON_Invalid(t *testing.T) {
	for _, input := range []string{`"abc"`, `true`, `[1]`, `{}`, `"NaN"`} {
		t.Run(input, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(input), &n)
			require.Error(t, err)

			var typeErr *json.UnmarshalTypeError
			assert.True(t, errors.As(err, &typeErr), "got %T", err)
		})
	}
}

func TestInt_UnmarshalJSON(t *testing.T) {
	var i Int
	require.NoError(t, json.Unmarshal([]byte(`"7"`), &i))
	assert.Equal(t, Int(7), i)

	require.NoError(t, json.Unmarshal([]byte(`3`), &i))
	assert.Equal(t, Int(3), i)

	assert.Error(t, json.Unmarshal([]byte(`1.5`), &i))
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &i))
}

func TestNumber_FieldNameInError(t *testing.T) {
	var in SettingsInput
	err := json.Unmarshal([]byte(`{"taxPercentage": "ten"}`), &in)

	var typeErr *json.UnmarshalTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "taxPercentage", typeErr.Field)
}

func TestInvoice_DisplayStatus(t *testing.T) {
	inv := Invoice{Status: StatusPending, DueDate: "2024-03-01"}
	assert.True(t, inv.IsOverdue("2024-03-02"))
	assert.Equal(t, StatusOverdue, inv.DisplayStatus("2024-03-02"))

	// due today is not overdue yet
	assert.Equal(t, StatusPending, inv.DisplayStatus("2024-03-01"))

	inv.Status = StatusPaid
	assert.Equal(t, StatusPaid, inv.DisplayStatus("2024-03-02"))

	inv.Status = StatusDraft
	assert.False(t, inv.IsOverdue("2024-03-02"))
}

func TestInvoicePatch_Apply(t *testing.T) {
	inv := Invoice{
		CustomerID:    1,
		InvoiceNumber: "INV-1",
		Status:        StatusDraft,
		Notes:         "keep",
		Items:         []InvoiceItem{{Description: "a", Quantity: 1, UnitPrice: 5}},
	}

	items := InvoiceItemInputs{
		{Description: "b", Quantity: NumberPtr(2), UnitPrice: NumberPtr(3)},
		{Description: "c", Quantity: NumberPtr(1), UnitPrice: NumberPtr(4), TaxRate: NumberPtr(5)},
	}
	InvoicePatch{Status: StringPtr(StatusPaid), Items: &items}.Apply(&inv)

	assert.Equal(t, StatusPaid, inv.Status)
	assert.Equal(t, "keep", inv.Notes)
	assert.Equal(t, 1, inv.CustomerID)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, InvoiceItem{Description: "c", Quantity: 1, UnitPrice: 4, TaxRate: 5}, inv.Items[1])
}

func TestCustomerPatch_Apply(t *testing.T) {
	c := Customer{ID: 4, Name: "Old", Email: "old@example.com", Phone: "1", Address: "A"}
	CustomerPatch{Name: StringPtr("New")}.Apply(&c)

	assert.Equal(t, Customer{ID: 4, Name: "New", Email: "old@example.com", Phone: "1", Address: "A"}, c)
}

func TestSettingsInput_AlwaysTargetsSingleton(t *testing.T) {
	in := SettingsInput{CompanyName: "X", TaxPercentage: NumberPtr(18)}
	s := in.ToSettings()
	assert.Equal(t, SettingsID, s.ID)
	assert.Equal(t, 18.0, s.TaxPercentage)
}
