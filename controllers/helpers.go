package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kariqs/foodcourt-api/middlewares"
	"github.com/Kariqs/foodcourt-api/services"
	"github.com/gin-gonic/gin"
)

// Standard response messages
const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "internal server error"
	msgInvalidWaiterID     = "invalid waiter id"
	msgInvalidItemID       = "invalid item id"
	msgBadID               = "bad id"
	msgWaiterNotFound      = "waiter not found"
	msgOrderNotFound       = "order not found"
	msgItemNotFound        = "item not found"
)

// fieldMessage maps a JSON type error under field to a client message.
type fieldMessage struct {
	field   string
	message string
}

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

// bindJSON decodes the request body into dst. An empty body leaves dst
// zero-valued so the service can say what is missing.
func bindJSON(ctx *gin.Context, dst any, fields ...fieldMessage) bool {
	err := ctx.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	message := msgInvalidInput
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		for _, f := range fields {
			if strings.HasPrefix(typeErr.Field, f.field) {
				message = f.message
				break
			}
		}
	}
	sendErrorResponse(ctx, http.StatusBadRequest, message)
	return false
}

// parseID reads a positive numeric path parameter.
func parseID(ctx *gin.Context, param, message string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, message)
		return 0, false
	}
	return uint(id), true
}

// queryLimit returns the ?limit value, or 0 when absent or not a number.
func queryLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func respondWithServiceError(ctx *gin.Context, err error, notFound string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		sendErrorResponse(ctx, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrUnauthenticated):
		sendErrorResponse(ctx, http.StatusUnauthorized, notFound)
	default:
		log.Printf("[%s] %s %s failed: %v", ctx.GetString(middlewares.RequestIDKey), ctx.Request.Method, ctx.Request.URL.Path, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}
