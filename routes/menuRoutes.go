package routes

import (
	"github.com/Kweyu/resto-api/controllers"
	"github.com/Kweyu/resto-api/middlewares"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine, menu *controllers.MenuController) {
	server.GET("/menu", menu.GetMenu)
	server.GET("/menu/:id", menu.GetMenuItem)

	admin := server.Group("", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		// The management list lives under /admin: gin cannot mix a static
		// segment like /menu/all with the /menu/:id wildcard.
		admin.GET("/admin/menu", menu.GetFullMenu)
		admin.POST("/menu", menu.CreateMenuItem)
		admin.PUT("/menu/:id", menu.UpdateMenuItem)
		admin.DELETE("/menu/:id", menu.DeleteMenuItem)
		admin.PATCH("/menu/:id/availability", menu.SetAvailability)
		admin.PATCH("/menu/:id/price", menu.SetPrice)
		admin.PATCH("/menu/:id/name", menu.SetName)
	}
}
