package routes

import (
	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/gin-gonic/gin"
)

func DayEndRoutes(api, admin *gin.RouterGroup, c *controllers.DayEndController) {
	admin.POST("/day-end", c.RunDayEnd)
	api.GET("/day-end/reports", c.GetReports)
}
