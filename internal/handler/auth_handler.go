package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

const refreshTokenCookie = "refreshToken"

// AuthHandler exposes authentication endpoints. The refresh token travels in
// an http-only cookie rather than the response body.
type AuthHandler struct {
	service      *service.AuthService
	cookieMaxAge time.Duration
	cookieSecure bool
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(svc *service.AuthService, cookieMaxAge time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: svc, cookieMaxAge: cookieMaxAge, cookieSecure: cookieSecure}
}

// Login godoc
// @Summary Log in with a business id and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	response.JSON(c, http.StatusOK, "User logged in successfully!", result, nil)
}

// RefreshToken godoc
// @Summary Exchange the refresh cookie for a new access token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := c.Cookie(refreshTokenCookie)
	if err != nil || token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "refresh token is missing"))
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Access token refreshed successfully!", result, nil)
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "You are not authorized"))
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), claims.UserID, req); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Password changed successfully!", nil, nil)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, token, int(h.cookieMaxAge.Seconds()), "/", "", h.cookieSecure, true)
}
