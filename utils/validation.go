// utils/validation.go
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError describes the first field of a request that failed
// validation. Field is a dotted path of JSON names, e.g. "items.0.quantity".
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SetupValidator configures gin's validator to report JSON field names
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// BindError converts an error from ShouldBindJSON into a ValidationError
// naming the first offending field.
func BindError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		path := FieldPath(fe.Namespace())
		return NewValidationError(path, validationMessage(path, fe))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		var nested nestedDecodeError
		if errors.As(err, &nested) {
			field = joinPath(nested.FieldPrefix(), field)
		}
		return NewValidationError(field, "Expected "+typeName(typeErr.Type)+", received "+typeErr.Value)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return NewValidationError("", "Malformed JSON body")
	}
	if errors.Is(err, io.EOF) {
		return NewValidationError("", "Request body is required")
	}

	return NewValidationError("", "Invalid input: "+err.Error())
}

// nestedDecodeError is returned by list decoders that know which element
// failed. FieldPrefix is the path of that element, e.g. "items.1".
type nestedDecodeError interface {
	error
	FieldPrefix() string
}

func joinPath(prefix, field string) string {
	if field == "" {
		return prefix
	}
	return prefix + "." + field
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// FieldPath turns a validator namespace such as "InvoiceInput.items[0].unitPrice"
// into "items.0.unitPrice".
func FieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexPattern.ReplaceAllString(namespace, ".$1")
}

// entityMessages override fieldMessages for one request type, keyed by
// "<type>.<field>".
var entityMessages = map[string]string{
	"ItemInput.name": "Item name is required",
	"ItemPatch.name": "Item name is required",
}

var fieldMessages = map[string]string{
	"name":                  "Name is required",
	"email":                 "Invalid email address",
	"phone":                 "Phone number is required",
	"address":               "Address is required",
	"description":           "Description is required",
	"quantity":              "Quantity must be at least 1",
	"unitPrice":             "Price must be positive",
	"taxRate":               "Tax rate must be between 0 and 100",
	"customerId":            "Customer is required",
	"invoiceNumber":         "Invoice number is required",
	"date.required":         "Date is required",
	"date.datetime":         "Date must be in YYYY-MM-DD format",
	"dueDate.required":      "Due date is required",
	"dueDate.datetime":      "Due date must be in YYYY-MM-DD format",
	"status.required":       "Status is required",
	"status.oneof":          "Status must be one of: draft, pending, paid",
	"items":                 "At least one item is required",
	"companyName":           "Company name is required",
	"companyAddress":        "Company address is required",
	"companyPhone":          "Company phone is required",
	"companyEmail":          "Invalid company email",
	"taxPercentage":         "Tax percentage must be between 0 and 100",
	"hsnCode":               "HSN/SAC code is required",
	"sellingPrice":          "Selling price must be positive",
	"costPrice":             "Cost price must be positive",
	"quantity.required":     "Quantity is required",
	"unitPrice.required":    "Price is required",
	"sellingPrice.required": "Selling price is required",
	"costPrice.required":    "Cost price is required",
}

func validationMessage(path string, e validator.FieldError) string {
	field := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		field = path[i+1:]
	}
	if msg, ok := entityMessages[entityName(e.Namespace())+"."+field]; ok {
		return msg
	}
	if msg, ok := fieldMessages[field+"."+e.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return genericMessage(e)
}

func entityName(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[:i]
	}
	return namespace
}

// genericMessage returns a human-readable message for a failed tag
func genericMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "datetime":
		return "Must be a date in " + e.Param() + " format"
	default:
		return "Invalid value"
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}
