package routes

import (
	"github.com/Kweyu/resto-api/controllers"
	"github.com/Kweyu/resto-api/middlewares"
	"github.com/gin-gonic/gin"
)

func PaymentRoutes(server *gin.Engine, payments *controllers.PaymentController) {
	server.POST("/payment", payments.ProcessCashPayment)
	server.GET("/payment/order/:orderId", payments.GetPaymentByOrder)
	server.GET("/payment/order/:orderId/receipt", payments.GetReceipt)
	server.GET("/payment", middlewares.RequireAuth(), middlewares.RequireAdmin(), payments.GetPayments)
}
