package controllers

import (
	"net/http"

	"github.com/Kariqs/foodcourt-api/services"
	"github.com/gin-gonic/gin"
)

const msgItemInput = "name and positive price_cents required"

type ItemController struct {
	catalog *services.CatalogService
}

func (c *ItemController) GetItems(ctx *gin.Context) {
	items, err := c.catalog.ListItems(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err, msgItemNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, items)
}

func (c *ItemController) CreateItem(ctx *gin.Context) {
	var input services.CreateItemInput
	if !bindJSON(ctx, &input, fieldMessage{"", msgItemInput}) {
		return
	}

	item, err := c.catalog.CreateItem(ctx.Request.Context(), input)
	if err != nil {
		respondWithServiceError(ctx, err, msgItemNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, item)
}

// UpdateItem corrects a catalog entry; already placed orders keep their prices.
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", msgInvalidItemID)
	if !ok {
		return
	}
	var input services.UpdateItemInput
	if !bindJSON(ctx, &input) {
		return
	}

	item, err := c.catalog.UpdateItem(ctx.Request.Context(), id, input)
	if err != nil {
		respondWithServiceError(ctx, err, msgItemNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, item)
}
