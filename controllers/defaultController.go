package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Food Court API. Orders, waiters and day-end reconciliation.

The following are the endpoints for this API:

ITEMS
- GET "/api/items" - List the catalog
- POST "/api/items" - Add a catalog item (admin)
- PATCH "/api/items/:id" - Correct an item name or price (admin)

CUSTOMERS
- GET "/api/customers" - Latest 100 customers
- POST "/api/customers" - Create a customer

WAITERS
- GET "/api/waiters" - List waiters with their status
- POST "/api/waiters" - Create a waiter (admin)
- POST "/api/waiters/login" - Log in by phone
- POST "/api/waiters/:id/status" - Set status to free or engaged
- GET "/api/waiters/:id/orders" - Latest orders served by a waiter

ORDERS
- POST "/api/orders" - Place an order
- GET "/api/orders" - Latest orders
- GET "/api/orders/:id" - Get order by ID

DAY-END
- POST "/api/day-end" - Export all orders to a spreadsheet, then clear them (admin)
- GET "/api/day-end/reports" - Day-end history
- GET "/reports/:file" - Download an archived day-end spreadsheet

- GET "/metrics" - Prometheus metrics`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
