package controllers

import (
	"net/http"

	"github.com/Kariqs/foodcourt-api/services"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	catalog *services.CatalogService
}

func (c *CustomerController) GetCustomers(ctx *gin.Context) {
	customers, err := c.catalog.ListCustomers(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err, "customer not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, customers)
}

func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var input services.CreateCustomerInput
	if !bindJSON(ctx, &input) {
		return
	}

	customer, err := c.catalog.CreateCustomer(ctx.Request.Context(), input)
	if err != nil {
		respondWithServiceError(ctx, err, "customer not found")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, customer)
}
