package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/middleware"
	"github.com/univista/ums-api/internal/models"
)

// currentClaims extracts the authenticated user's claims from the context.
func currentClaims(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// listOptions reads the shared pagination and sorting query parameters.
func listOptions(c *gin.Context) models.ListOptions {
	var opts models.ListOptions
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil {
		opts.Limit = limit
	}
	opts.SortBy = c.Query("sortBy")
	opts.SortOrder = c.Query("sortOrder")
	return opts
}
