package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

// AdminHandler exposes admin profile endpoints.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs an admin handler.
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// List godoc
// @Summary List admins
// @Tags Admins
// @Produce json
// @Param searchTerm query string false "Search in id, email, contact, designation and name"
// @Param id query string false "Filter by business id"
// @Param email query string false "Filter by email"
// @Param designation query string false "Filter by designation"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	var filter models.AdminFilter
	filter.SearchTerm = c.Query("searchTerm")
	filter.ID = c.Query("id")
	filter.Email = c.Query("email")
	filter.ContactNo = c.Query("contactNo")
	filter.EmergencyContactNo = c.Query("emergencyContactNo")
	filter.BloodGroup = c.Query("bloodGroup")
	filter.Designation = c.Query("designation")
	filter.Options = listOptions(c)

	admins, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &models.Pagination{Page: filter.Options.Page, Limit: filter.Options.Limit, Total: total}
	response.JSON(c, http.StatusOK, "Admins retrieved successfully!", admins, meta)
}

// Get godoc
// @Summary Get one admin
// @Tags Admins
// @Produce json
// @Param id path string true "Admin business id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Admin retrieved successfully!", admin, nil)
}

// Update godoc
// @Summary Update an admin
// @Tags Admins
// @Accept json
// @Produce json
// @Param id path string true "Admin business id"
// @Param payload body models.AdminUpdate true "Partial admin payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admins/{id} [patch]
func (h *AdminHandler) Update(c *gin.Context) {
	var req models.AdminUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	admin, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Admin updated successfully!", admin, nil)
}

// Delete godoc
// @Summary Delete an admin
// @Tags Admins
// @Produce json
// @Param id path string true "Admin business id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	admin, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Admin deleted successfully!", admin, nil)
}
