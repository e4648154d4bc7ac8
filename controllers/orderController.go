package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Kweyu/resto-api/models"
	"github.com/Kweyu/resto-api/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
	menu   *services.MenuService
}

func NewOrderController(orders *services.OrderService, menu *services.MenuService) *OrderController {
	return &OrderController{orders: orders, menu: menu}
}

func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var body struct {
		Type         models.OrderType `json:"type" binding:"required"`
		CustomerName string           `json:"customerName" binding:"required"`
		TableNumber  string           `json:"tableNumber"`
		PhoneNumber  string           `json:"phoneNumber"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.Type.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, "unknown order type: "+string(body.Type))
		return
	}
	if body.Type == models.OrderTypeDineIn && body.TableNumber == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "table number is required for dine-in orders")
		return
	}

	order, err := oc.orders.CreateOrder(body.Type, body.CustomerName, body.TableNumber, body.PhoneNumber)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// AddItem attaches a menu item to the order. The catalog row is looked up
// here; the lifecycle service stores a snapshot of it.
func (oc *OrderController) AddItem(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}

	var body struct {
		MenuItemID          int    `json:"menuItemId" binding:"required"`
		Quantity            int    `json:"quantity" binding:"required"`
		SpecialInstructions string `json:"specialInstructions"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Quantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "quantity must be greater than zero")
		return
	}

	menuItem, err := oc.menu.GetMenuItemByID(body.MenuItemID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	if err := oc.orders.AddItemToOrder(orderID, menuItem, body.Quantity, body.SpecialInstructions); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": menuItem.Name + " added to order"})
}

func (oc *OrderController) UpdateStatus(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}

	var body struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.Status.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, "unknown order status: "+string(body.Status))
		return
	}

	if err := oc.orders.UpdateOrderStatus(orderID, body.Status); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "order status updated"})
}

func (oc *OrderController) MarkItemReady(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}
	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := oc.orders.MarkItemReady(orderID, itemID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "item marked ready"})
}

func (oc *OrderController) CompleteOrder(ctx *gin.Context) {
	oc.terminate(ctx, oc.orders.CompleteOrder, "order completed")
}

func (oc *OrderController) CancelOrder(ctx *gin.Context) {
	oc.terminate(ctx, oc.orders.CancelOrder, "order cancelled")
}

func (oc *OrderController) terminate(ctx *gin.Context, op func(int) error, message string) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}
	if err := op(orderID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (oc *OrderController) GetOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := oc.orders.GetOrderByID(orderID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order, "isPaid": order.IsPaid()})
}

// GetOrders lists orders newest first, optionally filtered by ?type= or
// ?status= (type wins when both are sent).
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	var (
		orders []models.Order
		err    error
	)
	switch {
	case ctx.Query("type") != "":
		orderType := models.OrderType(ctx.Query("type"))
		if !orderType.Valid() {
			sendErrorResponse(ctx, http.StatusBadRequest, "unknown order type: "+string(orderType))
			return
		}
		orders, err = oc.orders.GetOrdersByType(orderType)
	case ctx.Query("status") != "":
		status := models.OrderStatus(ctx.Query("status"))
		if !status.Valid() {
			sendErrorResponse(ctx, http.StatusBadRequest, "unknown order status: "+string(status))
			return
		}
		orders, err = oc.orders.GetOrdersByStatus(status)
	default:
		orders, err = oc.orders.GetAllOrders()
	}
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetActiveOrders backs the kitchen view, which polls this on a timer.
func (oc *OrderController) GetActiveOrders(ctx *gin.Context) {
	orders, err := oc.orders.GetActiveOrders()
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) GetActiveOrderCount(ctx *gin.Context) {
	count, err := oc.orders.CountActiveOrders()
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"activeOrderCount": count})
}
