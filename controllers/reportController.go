package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Kweyu/resto-api/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	orders   *services.OrderService
	payments *services.PaymentService
}

func NewReportController(orders *services.OrderService, payments *services.PaymentService) *ReportController {
	return &ReportController{orders: orders, payments: payments}
}

// GetOrderRevenue sums line items of Completed orders. Without query params
// it covers all time; with ?start= and ?end= it is range-filtered by order time.
func (rc *ReportController) GetOrderRevenue(ctx *gin.Context) {
	if ctx.Query("start") == "" && ctx.Query("end") == "" {
		total, err := rc.orders.GetTotalRevenue()
		if err != nil {
			log.Println(err)
			respondWithServiceError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"revenue": total})
		return
	}

	start, end, err := parseDateRange(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	total, err := rc.orders.GetTotalRevenueForDateRange(start, end)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"revenue": total, "start": start, "end": end})
}

// GetPaymentRevenue is the cash-drawer view: Completed payments by payment time.
func (rc *ReportController) GetPaymentRevenue(ctx *gin.Context) {
	start, end, err := parseDateRange(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	total, err := rc.payments.GetTotalRevenueByDateRange(start, end)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"revenue": total, "start": start, "end": end})
}

// GetTopSellingItems ranks items sold in Completed orders by quantity,
// truncated to ?limit= (default 10).
func (rc *ReportController) GetTopSellingItems(ctx *gin.Context) {
	start, end, err := parseDateRange(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	items, err := rc.payments.GetTopSellingItems(start, end, limit)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items, "start": start, "end": end})
}
