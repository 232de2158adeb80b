package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/middleware"
)

// SectionController handles section scheduling operations
type SectionController struct {
	sectionService *services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// GetAllSections retrieves all sections
// @Summary Get all sections
// @Description Retrieves all scheduled sections ordered by ID
// @Tags sections
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Section} "Sections retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *SectionController) GetAllSections(ctx *gin.Context) {
	sections, err := c.sectionService.GetAllSections(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sections,
		Timestamp: time.Now(),
	})
}

// GetSectionByID retrieves a section by ID
// @Summary Get section by ID
// @Description Retrieves a specific section by its ID
// @Tags sections
// @Accept json
// @Produce json
// @Param sid path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{sid} [get]
func (c *SectionController) GetSectionByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "sid")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSectionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// CreateSection handles section creation
// @Summary Create a new section
// @Description Schedules a new section for an existing class and room
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Section true "Section information"
// @Success 201 {object} dto.APIResponse{data=models.Section} "Section created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Referenced class or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	section, err := c.sectionService.CreateSection(ctx, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// UpdateSection handles section updates
// @Summary Update a section
// @Description Updates an existing section with the provided fields
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path int true "Section ID"
// @Param request body models.Section true "Section fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Section, class or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{sid} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "sid")
	if !ok {
		return
	}

	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	section, err := c.sectionService.UpdateSection(ctx, id, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// DeleteSection deletes a section
// @Summary Delete a section
// @Description Deletes a section by its ID
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path int true "Section ID"
// @Success 204 "Section deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{sid} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "sid")
	if !ok {
		return
	}

	if err := c.sectionService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
