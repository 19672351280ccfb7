package controllers

import (
	"net/http"

	"invoicing-backend/models"
	"invoicing-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const customerEntity = "Customer"

type CustomerController struct {
	store  *services.Store
	logger *zap.Logger
}

func NewCustomerController(store *services.Store, logger *zap.Logger) *CustomerController {
	return &CustomerController{store: store, logger: logger}
}

// GetCustomers lists all customers
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.store.ListCustomers(c.Request.Context())
	if err != nil {
		respondStoreError(c, cc.logger, customerEntity, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a single customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, customerEntity)
	if !ok {
		return
	}
	customer, err := cc.store.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, cc.logger, customerEntity, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer creates a new customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input models.CustomerInput
	if !bindJSON(c, &input) {
		return
	}
	customer, err := cc.store.CreateCustomer(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, cc.logger, customerEntity, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer updates the provided fields of a customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, customerEntity)
	if !ok {
		return
	}
	var input models.CustomerPatch
	if !bindJSON(c, &input) {
		return
	}
	customer, err := cc.store.UpdateCustomer(c.Request.Context(), id, input)
	if err != nil {
		respondStoreError(c, cc.logger, customerEntity, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer; deleting a missing one still succeeds
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, customerEntity)
	if !ok {
		return
	}
	if err := cc.store.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondStoreError(c, cc.logger, customerEntity, err)
		return
	}
	c.Status(http.StatusNoContent)
}
