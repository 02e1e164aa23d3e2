package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kamaru-dev/gpcal-api/internal/models"
	"github.com/kamaru-dev/gpcal-api/internal/service"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
	"github.com/kamaru-dev/gpcal-api/pkg/response"
)

// SemesterHandler exposes semester CRUD and link endpoints.
type SemesterHandler struct {
	semesters *service.SemesterService
}

// NewSemesterHandler constructs handler.
func NewSemesterHandler(semesters *service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesters: semesters}
}

// List godoc
// @Summary List semesters
// @Tags Semesters
// @Produce json
// @Param search query string false "Filter by name"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param sortBy query string false "Sort field (name, last_updated)"
// @Param sortOrder query string false "Sort direction (asc, desc)"
// @Success 200 {object} response.Envelope
// @Router /semesters [get]
func (h *SemesterHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	filter := models.SemesterFilter{
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	semesters, pagination, err := h.semesters.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semesters, pagination)
}

// Get godoc
// @Summary Get semester with courses and linked ids
// @Tags Semesters
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id} [get]
func (h *SemesterHandler) Get(c *gin.Context) {
	semester, err := h.semesters.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semester, nil)
}

// Create godoc
// @Summary Create semester
// @Tags Semesters
// @Accept json
// @Produce json
// @Param payload body service.CreateSemesterRequest true "Semester payload"
// @Success 201 {object} response.Envelope
// @Router /semesters [post]
func (h *SemesterHandler) Create(c *gin.Context) {
	var req service.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	semester, err := h.semesters.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, semester)
}

// Update godoc
// @Summary Update semester
// @Tags Semesters
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Param payload body service.UpdateSemesterRequest true "Semester payload"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id} [put]
func (h *SemesterHandler) Update(c *gin.Context) {
	var req service.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	semester, err := h.semesters.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semester, nil)
}

// Delete godoc
// @Summary Delete semester, unlinking neighbors and removing courses
// @Tags Semesters
// @Param id path string true "Semester ID"
// @Success 204
// @Router /semesters/{id} [delete]
func (h *SemesterHandler) Delete(c *gin.Context) {
	if err := h.semesters.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Link godoc
// @Summary Link two semesters symmetrically
// @Tags Semesters
// @Accept json
// @Param id path string true "Semester ID"
// @Param payload body service.LinkSemesterRequest true "Link payload"
// @Success 204
// @Router /semesters/{id}/links [post]
func (h *SemesterHandler) Link(c *gin.Context) {
	var req service.LinkSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.semesters.Link(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Unlink godoc
// @Summary Remove the link between two semesters
// @Tags Semesters
// @Param id path string true "Semester ID"
// @Param linkedId path string true "Linked semester ID"
// @Success 204
// @Router /semesters/{id}/links/{linkedId} [delete]
func (h *SemesterHandler) Unlink(c *gin.Context) {
	if err := h.semesters.Unlink(c.Request.Context(), c.Param("id"), c.Param("linkedId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListLinks godoc
// @Summary List linked semesters as full records
// @Tags Semesters
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id}/links [get]
func (h *SemesterHandler) ListLinks(c *gin.Context) {
	linked, err := h.semesters.ResolveLinked(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if linked == nil {
		linked = []models.Semester{}
	}
	response.JSON(c, http.StatusOK, linked, nil)
}
