package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Kweyu/resto-api/services"
	"github.com/Kweyu/resto-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentController struct {
	payments *services.PaymentService
	receipts *utils.ReceiptMailer
}

// NewPaymentController wires the payment service and an optional receipt
// mailer; pass nil to disable emailed receipt copies.
func NewPaymentController(payments *services.PaymentService, receipts *utils.ReceiptMailer) *PaymentController {
	return &PaymentController{payments: payments, receipts: receipts}
}

func (pc *PaymentController) ProcessCashPayment(ctx *gin.Context) {
	var body struct {
		OrderID     int             `json:"orderId" binding:"required"`
		AmountPaid  decimal.Decimal `json:"amountPaid" binding:"required"`
		CashierName string          `json:"cashierName" binding:"required"`
		Notes       string          `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := pc.payments.ProcessCashPayment(body.OrderID, body.AmountPaid, body.CashierName, body.Notes)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	if pc.receipts != nil {
		if _, order, err := pc.payments.GetPaymentWithOrder(body.OrderID); err == nil {
			if err := pc.receipts.SendReceiptCopy(payment, order); err != nil {
				log.Println("Receipt email failed:", err)
			}
		}
	}

	ctx.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) GetPaymentByOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}

	payment, err := pc.payments.GetPaymentByOrderID(orderID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"payment": payment})
}

// GetReceipt renders the payment's receipt. Plain text by default;
// ?format=qr returns the QR payload as a PNG.
func (pc *PaymentController) GetReceipt(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid order id")
		return
	}

	payment, order, err := pc.payments.GetPaymentWithOrder(orderID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	if ctx.Query("format") == "qr" {
		png, err := utils.BuildReceiptQR(payment)
		if err != nil {
			log.Println("QR generation failed:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "unable to render receipt QR code")
			return
		}
		ctx.Data(http.StatusOK, "image/png", png)
		return
	}

	ctx.String(http.StatusOK, utils.BuildReceiptText(payment, order))
}

// GetPayments lists payments within ?start= and ?end= (RFC 3339 or
// YYYY-MM-DD), newest first.
func (pc *PaymentController) GetPayments(ctx *gin.Context) {
	start, end, err := parseDateRange(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	payments, err := pc.payments.GetPaymentsByDateRange(start, end)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"payments": payments})
}

// parseDateRange reads the start/end query params shared by the payment and
// report endpoints. Date-only values span whole days: the end date is pushed
// to the last instant of that day.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, error) {
	start, err := parseDateParam(ctx.Query("start"), false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateParam(ctx.Query("end"), true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
