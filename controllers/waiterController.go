package controllers

import (
	"net/http"

	"github.com/Kariqs/foodcourt-api/services"
	"github.com/gin-gonic/gin"
)

type WaiterController struct {
	waiters *services.WaiterService
}

func (c *WaiterController) GetWaiters(ctx *gin.Context) {
	waiters, err := c.waiters.List(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err, msgWaiterNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, waiters)
}

func (c *WaiterController) CreateWaiter(ctx *gin.Context) {
	var input services.CreateWaiterInput
	if !bindJSON(ctx, &input) {
		return
	}

	waiter, err := c.waiters.Create(ctx.Request.Context(), input)
	if err != nil {
		respondWithServiceError(ctx, err, msgWaiterNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, waiter)
}

// Login identifies a waiter by phone alone.
func (c *WaiterController) Login(ctx *gin.Context) {
	var input services.LoginInput
	if !bindJSON(ctx, &input, fieldMessage{"phone", "phone required"}) {
		return
	}

	waiter, err := c.waiters.Login(ctx.Request.Context(), input)
	if err != nil {
		respondWithServiceError(ctx, err, msgWaiterNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, waiter)
}

func (c *WaiterController) SetStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", msgInvalidWaiterID)
	if !ok {
		return
	}
	var input services.StatusInput
	if !bindJSON(ctx, &input) {
		return
	}

	waiter, err := c.waiters.SetStatus(ctx.Request.Context(), id, input)
	if err != nil {
		respondWithServiceError(ctx, err, msgWaiterNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, waiter)
}

func (c *WaiterController) GetWaiterOrders(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", msgInvalidWaiterID)
	if !ok {
		return
	}

	orders, err := c.waiters.Orders(ctx.Request.Context(), id, queryLimit(ctx))
	if err != nil {
		respondWithServiceError(ctx, err, msgWaiterNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}
