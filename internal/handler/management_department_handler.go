package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

// ManagementDepartmentHandler exposes management department endpoints.
type ManagementDepartmentHandler struct {
	service *service.ManagementDepartmentService
}

// NewManagementDepartmentHandler constructs a management department handler.
func NewManagementDepartmentHandler(svc *service.ManagementDepartmentService) *ManagementDepartmentHandler {
	return &ManagementDepartmentHandler{service: svc}
}

// List godoc
// @Summary List management departments
// @Tags ManagementDepartments
// @Produce json
// @Param searchTerm query string false "Search in title"
// @Param title query string false "Filter by title"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /management-departments [get]
func (h *ManagementDepartmentHandler) List(c *gin.Context) {
	var filter models.ManagementDepartmentFilter
	filter.SearchTerm = c.Query("searchTerm")
	filter.Title = c.Query("title")
	filter.Options = listOptions(c)

	departments, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &models.Pagination{Page: filter.Options.Page, Limit: filter.Options.Limit, Total: total}
	response.JSON(c, http.StatusOK, "Management departments retrieved successfully!", departments, meta)
}

// Get godoc
// @Summary Get one management department
// @Tags ManagementDepartments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /management-departments/{id} [get]
func (h *ManagementDepartmentHandler) Get(c *gin.Context) {
	department, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Management department retrieved successfully!", department, nil)
}

// Create godoc
// @Summary Create a management department
// @Tags ManagementDepartments
// @Accept json
// @Produce json
// @Param payload body models.TitleCreateRequest true "Department payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /management-departments [post]
func (h *ManagementDepartmentHandler) Create(c *gin.Context) {
	var req models.TitleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	department, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Management department created successfully!", department)
}

// Update godoc
// @Summary Update a management department
// @Tags ManagementDepartments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param payload body models.TitleUpdateRequest true "Partial department payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /management-departments/{id} [patch]
func (h *ManagementDepartmentHandler) Update(c *gin.Context) {
	var req models.TitleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	department, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Management department updated successfully!", department, nil)
}

// Delete godoc
// @Summary Delete a management department
// @Tags ManagementDepartments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /management-departments/{id} [delete]
func (h *ManagementDepartmentHandler) Delete(c *gin.Context) {
	department, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Management department deleted successfully!", department, nil)
}
