package main

import (
	"log"
	"os"
	"time"

	"github.com/Kweyu/resto-api/controllers"
	"github.com/Kweyu/resto-api/initializers"
	"github.com/Kweyu/resto-api/middlewares"
	"github.com/Kweyu/resto-api/routes"
	"github.com/Kweyu/resto-api/services"
	"github.com/Kweyu/resto-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	initializers.LoadEnv()

	db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	menuService := services.NewMenuService(db)
	orderService := services.NewOrderService(db)
	paymentService := services.NewPaymentService(db, orderService)

	if webhookURL := os.Getenv("ORDER_WEBHOOK_URL"); webhookURL != "" {
		orderService.Subscribe(utils.NewOrderWebhook(webhookURL))
		log.Println("Order webhook enabled:", webhookURL)
	}

	server := gin.Default()
	server.Use(middlewares.RequestID())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(db))
	routes.MenuRoutes(server, controllers.NewMenuController(menuService))
	routes.OrderRoutes(server, controllers.NewOrderController(orderService, menuService))
	routes.PaymentRoutes(server, controllers.NewPaymentController(paymentService, utils.NewReceiptMailer()))
	routes.ReportRoutes(server, controllers.NewReportController(orderService, paymentService))

	server.Run()
}
