package routes

import (
	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/gin-gonic/gin"
)

func WaiterRoutes(api, admin *gin.RouterGroup, c *controllers.WaiterController) {
	api.GET("/waiters", c.GetWaiters)
	admin.POST("/waiters", c.CreateWaiter)
	api.POST("/waiters/login", c.Login)
	waiter := api.Group("/waiters/:id")
	{
		waiter.POST("/status", c.SetStatus)
		waiter.PATCH("/status", c.SetStatus)
		waiter.GET("/orders", c.GetWaiterOrders)
	}
}
