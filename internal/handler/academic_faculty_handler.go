package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/response"
)

// AcademicFacultyHandler exposes academic faculty endpoints.
type AcademicFacultyHandler struct {
	service *service.AcademicFacultyService
}

// NewAcademicFacultyHandler constructs an academic faculty handler.
func NewAcademicFacultyHandler(svc *service.AcademicFacultyService) *AcademicFacultyHandler {
	return &AcademicFacultyHandler{service: svc}
}

// List godoc
// @Summary List academic faculties
// @Tags AcademicFaculties
// @Produce json
// @Param searchTerm query string false "Search in title"
// @Param title query string false "Filter by title"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-faculties [get]
func (h *AcademicFacultyHandler) List(c *gin.Context) {
	var filter models.AcademicFacultyFilter
	filter.SearchTerm = c.Query("searchTerm")
	filter.Title = c.Query("title")
	filter.Options = listOptions(c)

	faculties, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := &models.Pagination{Page: filter.Options.Page, Limit: filter.Options.Limit, Total: total}
	response.JSON(c, http.StatusOK, "Academic faculties retrieved successfully!", faculties, meta)
}

// Get godoc
// @Summary Get one academic faculty
// @Tags AcademicFaculties
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-faculties/{id} [get]
func (h *AcademicFacultyHandler) Get(c *gin.Context) {
	faculty, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic faculty retrieved successfully!", faculty, nil)
}

// Create godoc
// @Summary Create an academic faculty
// @Tags AcademicFaculties
// @Accept json
// @Produce json
// @Param payload body models.TitleCreateRequest true "Faculty payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-faculties [post]
func (h *AcademicFacultyHandler) Create(c *gin.Context) {
	var req models.TitleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	faculty, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Academic faculty created successfully!", faculty)
}

// Update godoc
// @Summary Update an academic faculty
// @Tags AcademicFaculties
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param payload body models.TitleUpdateRequest true "Partial faculty payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-faculties/{id} [patch]
func (h *AcademicFacultyHandler) Update(c *gin.Context) {
	var req models.TitleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	faculty, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic faculty updated successfully!", faculty, nil)
}

// Delete godoc
// @Summary Delete an academic faculty
// @Tags AcademicFaculties
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /academic-faculties/{id} [delete]
func (h *AcademicFacultyHandler) Delete(c *gin.Context) {
	faculty, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Academic faculty deleted successfully!", faculty, nil)
}
