package controllers

import (
	"errors"
	"net/http"

	"github.com/Kweyu/resto-api/services"
	"github.com/gin-gonic/gin"
)

var errInvalidDate = errors.New("start and end must be RFC 3339 timestamps or YYYY-MM-DD dates")

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithServiceError translates the service error kinds into HTTP
// statuses. Anything unrecognized is treated as a persistence failure.
func respondWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrDuplicatePayment):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInsufficientAmount),
		errors.Is(err, services.ErrInvalidTransition):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		sendErrorResponse(ctx, http.StatusInternalServerError, "something went wrong, try again later")
	}
}
