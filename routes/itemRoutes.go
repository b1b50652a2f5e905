package routes

import (
	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/gin-gonic/gin"
)

func ItemRoutes(api, admin *gin.RouterGroup, c *controllers.ItemController) {
	api.GET("/items", c.GetItems)
	admin.POST("/items", c.CreateItem)
	admin.PATCH("/items/:id", c.UpdateItem)
}

func CustomerRoutes(api *gin.RouterGroup, c *controllers.CustomerController) {
	api.GET("/customers", c.GetCustomers)
	api.POST("/customers", c.CreateCustomer)
}
