package response

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
	ErrorMessages []appErrors.Detail `json:"errorMessages,omitempty"`
	Data          interface{}        `json:"data,omitempty"`
	Meta          *models.Pagination `json:"meta,omitempty"`
	Stack         string             `json:"stack,omitempty"`
}

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, message string, data interface{}, meta *models.Pagination) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data, nil)
}

// Error sends an error response converting the error to the common envelope.
// Stack traces are only attached outside release mode.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	details := appErr.Details
	if len(details) == 0 {
		details = []appErrors.Detail{{Path: "", Message: appErr.Message}}
	}

	envelope := Envelope{
		Success:       false,
		Message:       appErr.Message,
		ErrorMessages: details,
	}
	if gin.Mode() != gin.ReleaseMode {
		envelope.Stack = fmt.Sprintf("%v\n%s", appErr, debug.Stack())
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, envelope)
}

// NotFoundRoute handles unmatched routes with the standard envelope.
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, Envelope{
		Success: false,
		Message: "Not Found",
		ErrorMessages: []appErrors.Detail{
			{Path: c.Request.URL.Path, Message: "API Not Found"},
		},
	})
}
