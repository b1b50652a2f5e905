package routes

import (
	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/Kariqs/foodcourt-api/middlewares"
	"github.com/gin-gonic/gin"
)

type Options struct {
	AdminSecret string
	ReportsDir  string
}

// Register mounts every route on server. Admin-only routes share /api with
// the rest and differ only by the guard in front of them.
func Register(server *gin.Engine, c *controllers.Controllers, opts Options) {
	DefaultRoutes(server)
	server.Static("/reports", opts.ReportsDir)

	api := server.Group("/api")
	admin := api.Group("", middlewares.AdminGuard(opts.AdminSecret)...)

	ItemRoutes(api, admin, c.Items)
	CustomerRoutes(api, c.Customers)
	WaiterRoutes(api, admin, c.Waiters)
	OrderRoutes(api, c.Orders)
	DayEndRoutes(api, admin, c.DayEnd)
}
