package routes

import (
	"github.com/Kweyu/resto-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController) {
	server.POST("/order", orders.CreateOrder)
	server.GET("/order", orders.GetOrders)
	server.GET("/order/:orderId", orders.GetOrder)
	server.POST("/order/:orderId/items", orders.AddItem)
	server.PATCH("/order/:orderId/status", orders.UpdateStatus)
	server.PATCH("/order/:orderId/items/:itemId/ready", orders.MarkItemReady)
	server.POST("/order/:orderId/complete", orders.CompleteOrder)
	server.POST("/order/:orderId/cancel", orders.CancelOrder)

	// The kitchen display polls these on a timer.
	server.GET("/kitchen/orders", orders.GetActiveOrders)
	server.GET("/kitchen/orders/count", orders.GetActiveOrderCount)
}
