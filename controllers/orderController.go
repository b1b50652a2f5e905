package controllers

import (
	"net/http"

	"github.com/Kariqs/foodcourt-api/services"
	"github.com/gin-gonic/gin"
)

var orderFieldMessages = []fieldMessage{
	{"table_number", "table_number required"},
	{"items", "items required"},
	{"waiter_id", "waiter_id must be a number"},
	{"customer", "invalid customer"},
}

type OrderController struct {
	orders *services.OrderService
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var input services.CreateOrderInput
	if !bindJSON(ctx, &input, orderFieldMessages...) {
		return
	}

	result, err := c.orders.Create(ctx.Request.Context(), input)
	if err != nil {
		respondWithServiceError(ctx, err, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, result)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.List(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		respondWithServiceError(ctx, err, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", msgBadID)
	if !ok {
		return
	}

	order, err := c.orders.Get(ctx.Request.Context(), id)
	if err != nil {
		respondWithServiceError(ctx, err, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}
