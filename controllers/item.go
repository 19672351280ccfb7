package controllers

import (
	"net/http"
	"strconv"

	"invoicing-backend/models"
	"invoicing-backend/services"
	"invoicing-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const itemEntity = "Item"

// ItemController serves the product and service catalog
type ItemController struct {
	store  *services.Store
	logger *zap.Logger
}

func NewItemController(store *services.Store, logger *zap.Logger) *ItemController {
	return &ItemController{store: store, logger: logger}
}

func (ic *ItemController) GetItems(c *gin.Context) {
	items, err := ic.store.ListItems(c.Request.Context())
	if err != nil {
		respondStoreError(c, ic.logger, itemEntity, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ic *ItemController) GetItem(c *gin.Context) {
	id, ok := parseID(c, itemEntity)
	if !ok {
		return
	}
	item, err := ic.store.GetItem(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, ic.logger, itemEntity, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	var input models.ItemInput
	if !bindJSON(c, &input) {
		return
	}
	item, err := ic.store.CreateItem(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, ic.logger, itemEntity, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, itemEntity)
	if !ok {
		return
	}
	var input models.ItemPatch
	if !bindJSON(c, &input) {
		return
	}
	item, err := ic.store.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		respondStoreError(c, ic.logger, itemEntity, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, itemEntity)
	if !ok {
		return
	}
	if err := ic.store.DeleteItem(c.Request.Context(), id); err != nil {
		respondStoreError(c, ic.logger, itemEntity, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetItemLine returns an invoice line prefilled from a catalog item.
// quantity defaults to 1.
func (ic *ItemController) GetItemLine(c *gin.Context) {
	id, ok := parseID(c, itemEntity)
	if !ok {
		return
	}

	quantity := 1.0
	if raw := c.Query("quantity"); raw != "" {
		q, err := strconv.ParseFloat(raw, 64)
		if err != nil || q < 1 {
			utils.RespondWithValidationError(c, utils.NewValidationError("quantity", "Quantity must be at least 1"))
			return
		}
		quantity = q
	}

	item, err := ic.store.GetItem(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, ic.logger, itemEntity, err)
		return
	}
	c.JSON(http.StatusOK, services.LineFromCatalog(*item, quantity))
}
