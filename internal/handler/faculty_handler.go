package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

// FacultyHandler exposes faculty profile endpoints.
type FacultyHandler struct {
	service *service.FacultyService
}

// NewFacultyHandler constructs a faculty handler.
func NewFacultyHandler(svc *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{service: svc}
}

// List godoc
// @Summary List faculties
// @Tags Faculties
// @Produce json
// @Param searchTerm query string false "Search in id, email, contact, designation and name"
// @Param id query string false "Filter by business id"
// @Param email query string false "Filter by email"
// @Param designation query string false "Filter by designation"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /faculties [get]
func (h *FacultyHandler) List(c *gin.Context) {
	var filter models.FacultyFilter
	filter.SearchTerm = c.Query("searchTerm")
	filter.ID = c.Query("id")
	filter.Email = c.Query("email")
	filter.ContactNo = c.Query("contactNo")
	filter.EmergencyContactNo = c.Query("emergencyContactNo")
	filter.BloodGroup = c.Query("bloodGroup")
	filter.Designation = c.Query("designation")
	filter.Options = listOptions(c)

	faculties, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &models.Pagination{Page: filter.Options.Page, Limit: filter.Options.Limit, Total: total}
	response.JSON(c, http.StatusOK, "Faculties retrieved successfully!", faculties, meta)
}

// Get godoc
// @Summary Get one faculty
// @Tags Faculties
// @Produce json
// @Param id path string true "Faculty business id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /faculties/{id} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	faculty, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Faculty retrieved successfully!", faculty, nil)
}

// Update godoc
// @Summary Update a faculty
// @Tags Faculties
// @Accept json
// @Produce json
// @Param id path string true "Faculty business id"
// @Param payload body models.FacultyUpdate true "Partial faculty payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /faculties/{id} [patch]
func (h *FacultyHandler) Update(c *gin.Context) {
	var req models.FacultyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	faculty, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Faculty updated successfully!", faculty, nil)
}

// Delete godoc
// @Summary Delete a faculty
// @Tags Faculties
// @Produce json
// @Param id path string true "Faculty business id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /faculties/{id} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	faculty, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Faculty deleted successfully!", faculty, nil)
}
