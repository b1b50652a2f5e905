package routes

import (
	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, c *controllers.OrderController) {
	api.POST("/orders", c.CreateOrder)
	api.GET("/orders", c.GetOrders)
	api.GET("/orders/:id", c.GetOrder)
}
