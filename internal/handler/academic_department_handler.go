package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

// AcademicDepartmentHandler exposes academic department endpoints.
type AcademicDepartmentHandler struct {
	service *service.AcademicDepartmentService
}

// NewAcademicDepartmentHandler constructs an academic department handler.
func NewAcademicDepartmentHandler(svc *service.AcademicDepartmentService) *AcademicDepartmentHandler {
	return &AcademicDepartmentHandler{service: svc}
}

// List godoc
// @Summary List academic departments
// @Tags AcademicDepartments
// @Produce json
// @Param searchTerm query string false "Search in title"
// @Param title query string false "Filter by title"
// @Param academicFacultyId query string false "Filter by parent faculty"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-departments [get]
func (h *AcademicDepartmentHandler) List(c *gin.Context) {
	var filter models.AcademicDepartmentFilter
	filter.SearchTerm = c.Query("searchTerm")
	filter.Title = c.Query("title")
	filter.AcademicFacultyID = c.Query("academicFacultyId")
	filter.Options = listOptions(c)

	departments, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &models.Pagination{Page: filter.Options.Page, Limit: filter.Options.Limit, Total: total}
	response.JSON(c, http.StatusOK, "Academic departments retrieved successfully!", departments, meta)
}

// Get godoc
// @Summary Get one academic department
// @Tags AcademicDepartments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-departments/{id} [get]
func (h *AcademicDepartmentHandler) Get(c *gin.Context) {
	department, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic department retrieved successfully!", department, nil)
}

// Create godoc
// @Summary Create an academic department
// @Tags AcademicDepartments
// @Accept json
// @Produce json
// @Param payload body models.AcademicDepartmentCreateRequest true "Department payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-departments [post]
func (h *AcademicDepartmentHandler) Create(c *gin.Context) {
	var req models.AcademicDepartmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	department, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Academic department created successfully!", department)
}

// Update godoc
// @Summary Update an academic department
// @Tags AcademicDepartments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param payload body models.AcademicDepartmentUpdateRequest true "Partial department payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-departments/{id} [patch]
func (h *AcademicDepartmentHandler) Update(c *gin.Context) {
	var req models.AcademicDepartmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	department, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic department updated successfully!", department, nil)
}

// Delete godoc
// @Summary Delete an academic department
// @Tags AcademicDepartments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-departments/{id} [delete]
func (h *AcademicDepartmentHandler) Delete(c *gin.Context) {
	department, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic department deleted successfully!", department, nil)
}
