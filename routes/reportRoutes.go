package routes

import (
	"github.com/Kweyu/resto-api/controllers"
	"github.com/Kweyu/resto-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ReportRoutes(server *gin.Engine, reports *controllers.ReportController) {
	group := server.Group("/reports", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		group.GET("/revenue", reports.GetOrderRevenue)
		group.GET("/payments/revenue", reports.GetPaymentRevenue)
		group.GET("/top-items", reports.GetTopSellingItems)
	}
}
