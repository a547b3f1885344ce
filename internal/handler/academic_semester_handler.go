package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

// AcademicSemesterHandler exposes semester endpoints.
type AcademicSemesterHandler struct {
	service *service.AcademicSemesterService
}

// NewAcademicSemesterHandler constructs a semester handler.
func NewAcademicSemesterHandler(svc *service.AcademicSemesterService) *AcademicSemesterHandler {
	return &AcademicSemesterHandler{service: svc}
}

// List godoc
// @Summary List academic semesters
// @Tags AcademicSemesters
// @Produce json
// @Param searchTerm query string false "Search in title, code and year"
// @Param title query string false "Filter by title"
// @Param code query string false "Filter by code"
// @Param year query int false "Filter by year"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-semesters [get]
func (h *AcademicSemesterHandler) List(c *gin.Context) {
	var filter models.AcademicSemesterFilter
	filter.SearchTerm = c.Query("searchTerm")
	filter.Title = c.Query("title")
	filter.Code = c.Query("code")
	if year := c.Query("year"); year != "" {
		if val, err := strconv.Atoi(year); err == nil {
			filter.Year = &val
		}
	}
	filter.Options = listOptions(c)

	semesters, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &models.Pagination{Page: filter.Options.Page, Limit: filter.Options.Limit, Total: total}
	response.JSON(c, http.StatusOK, "Academic semesters retrieved successfully!", semesters, meta)
}

// Get godoc
// @Summary Get one academic semester
// @Tags AcademicSemesters
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-semesters/{id} [get]
func (h *AcademicSemesterHandler) Get(c *gin.Context) {
	semester, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic semester retrieved successfully!", semester, nil)
}

// Create godoc
// @Summary Create an academic semester
// @Tags AcademicSemesters
// @Accept json
// @Produce json
// @Param payload body models.AcademicSemesterCreateRequest true "Semester payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-semesters [post]
func (h *AcademicSemesterHandler) Create(c *gin.Context) {
	var req models.AcademicSemesterCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	semester, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Academic semester created successfully!", semester)
}

// Update godoc
// @Summary Update an academic semester
// @Tags AcademicSemesters
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Param payload body models.AcademicSemesterUpdateRequest true "Partial semester payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-semesters/{id} [patch]
func (h *AcademicSemesterHandler) Update(c *gin.Context) {
	var req models.AcademicSemesterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	semester, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic semester updated successfully!", semester, nil)
}

// Delete godoc
// @Summary Delete an academic semester
// @Tags AcademicSemesters
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-semesters/{id} [delete]
func (h *AcademicSemesterHandler) Delete(c *gin.Context) {
	semester, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic semester deleted successfully!", semester, nil)
}
