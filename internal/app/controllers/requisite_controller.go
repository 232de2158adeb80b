package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/middleware"
)

// RequisiteController handles requisite link operations
type RequisiteController struct {
	requisiteService *services.RequisiteService
}

// NewRequisiteController creates a new RequisiteController
func NewRequisiteController(requisiteService *services.RequisiteService) *RequisiteController {
	return &RequisiteController{
		requisiteService: requisiteService,
	}
}

// GetAllRequisites retrieves all requisites
// @Summary Get all requisites
// @Description Retrieves all requisite links ordered by class and requisite ID
// @Tags requisites
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Requisite} "Requisites retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requisites [get]
func (c *RequisiteController) GetAllRequisites(ctx *gin.Context) {
	requisites, err := c.requisiteService.GetAllRequisites(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requisites,
		Timestamp: time.Now(),
	})
}

// GetRequisiteByKey retrieves a requisite by its composite key
// @Summary Get requisite by key
// @Description Retrieves the requisite link between two classes
// @Tags requisites
// @Accept json
// @Produce json
// @Param classid path int true "Class ID"
// @Param reqid path int true "Requisite class ID"
// @Success 200 {object} dto.APIResponse{data=models.Requisite} "Requisite retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class or requisite ID"
// @Failure 404 {object} dto.ErrorResponse "Requisite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requisites/{classid}/{reqid} [get]
func (c *RequisiteController) GetRequisiteByKey(ctx *gin.Context) {
	classID, ok := pathID(ctx, "classid")
	if !ok {
		return
	}
	reqID, ok := pathID(ctx, "reqid")
	if !ok {
		return
	}

	requisite, err := c.requisiteService.GetRequisiteByKey(ctx, classID, reqID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requisite,
		Timestamp: time.Now(),
	})
}

// CreateRequisite handles requisite creation
// @Summary Create a new requisite
// @Description Links two existing classes as a prerequisite or corequisite
// @Tags requisites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Requisite true "Requisite information"
// @Success 201 {object} dto.APIResponse{data=models.Requisite} "Requisite created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate requisite"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Referenced class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requisites [post]
func (c *RequisiteController) CreateRequisite(ctx *gin.Context) {
	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	requisite, err := c.requisiteService.CreateRequisite(ctx, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      requisite,
		Timestamp: time.Now(),
	})
}

// UpdateRequisite handles requisite updates
// @Summary Update a requisite
// @Description Updates the prerequisite flag of an existing requisite link
// @Tags requisites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classid path int true "Class ID"
// @Param reqid path int true "Requisite class ID"
// @Param request body models.Requisite true "Requisite fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Requisite} "Requisite updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Requisite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requisites/{classid}/{reqid} [put]
func (c *RequisiteController) UpdateRequisite(ctx *gin.Context) {
	classID, ok := pathID(ctx, "classid")
	if !ok {
		return
	}
	reqID, ok := pathID(ctx, "reqid")
	if !ok {
		return
	}

	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	requisite, err := c.requisiteService.UpdateRequisite(ctx, classID, reqID, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requisite,
		Timestamp: time.Now(),
	})
}

// DeleteRequisite deletes a requisite
// @Summary Delete a requisite
// @Description Deletes the requisite link between two classes
// @Tags requisites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classid path int true "Class ID"
// @Param reqid path int true "Requisite class ID"
// @Success 204 "Requisite deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class or requisite ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Requisite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requisites/{classid}/{reqid} [delete]
func (c *RequisiteController) DeleteRequisite(ctx *gin.Context) {
	classID, ok := pathID(ctx, "classid")
	if !ok {
		return
	}
	reqID, ok := pathID(ctx, "reqid")
	if !ok {
		return
	}

	if err := c.requisiteService.DeleteRequisite(ctx, classID, reqID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
