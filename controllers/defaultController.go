package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Resto API. Single-location restaurant order management.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Staff login, returns a JWT
- POST "/auth/signup" - Create staff account (admin)

MENU
- GET "/menu" - Available items, optional ?category=
- GET "/menu/:id" - Get item by ID
- GET "/admin/menu" - Every item including unavailable (admin)
- POST "/menu" - Add menu item (admin)
- PUT "/menu/:id" - Replace menu item fields (admin)
- DELETE "/menu/:id" - Remove menu item (admin)
- PATCH "/menu/:id/availability" - Toggle availability (admin)
- PATCH "/menu/:id/price" - Change price (admin)
- PATCH "/menu/:id/name" - Rename item (admin)

ORDER
- POST "/order" - Create a new order
- GET "/order" - All orders, optional ?type= or ?status=
- GET "/order/:orderId" - Get order by ID
- GET "/kitchen/orders" - Orders still in flight (kitchen view)
- GET "/kitchen/orders/count" - Active order count
- POST "/order/:orderId/items" - Add a menu item to the order
- PATCH "/order/:orderId/status" - Move the order through its lifecycle
- PATCH "/order/:orderId/items/:itemId/ready" - Mark one item ready
- POST "/order/:orderId/complete" - Complete the order
- POST "/order/:orderId/cancel" - Cancel the order

PAYMENT
- POST "/payment" - Process a cash payment
- GET "/payment" - Payments in ?start=/?end= range (admin)
- GET "/payment/order/:orderId" - Payment for an order
- GET "/payment/order/:orderId/receipt" - Text receipt, ?format=qr for PNG

REPORTS (admin)
- GET "/reports/revenue" - Completed-order revenue, optional ?start=/?end=
- GET "/reports/payments/revenue" - Completed-payment revenue in range
- GET "/reports/top-items" - Top selling items in range, ?limit=`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
