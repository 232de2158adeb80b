package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/middleware"
	"github.com/segfault/coursecatalog/internal/pkg/validation"
)

// ClassController handles class catalog operations
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// GetAllClasses retrieves all classes
// @Summary Get all classes
// @Description Retrieves the full class catalog ordered by ID
// @Tags classes
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// GetClassByID retrieves a class by ID
// @Summary Get class by ID
// @Description Retrieves a specific class by its ID
// @Tags classes
// @Accept json
// @Produce json
// @Param classid path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classid} [get]
func (c *ClassController) GetClassByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "classid")
	if !ok {
		return
	}

	class, err := c.classService.GetClassByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// CreateClass handles class creation
// @Summary Create a new class
// @Description Creates a new class with the provided information
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Class true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate class code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	class, err := c.classService.CreateClass(ctx, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// UpdateClass handles class updates
// @Summary Update a class
// @Description Updates an existing class with the provided fields
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classid path int true "Class ID"
// @Param request body models.Class true "Class fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classid} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := pathID(ctx, "classid")
	if !ok {
		return
	}

	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	class, err := c.classService.UpdateClass(ctx, id, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// DeleteClass deletes a class
// @Summary Delete a class
// @Description Deletes a class by its ID
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classid path int true "Class ID"
// @Success 204 "Class deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classid} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := pathID(ctx, "classid")
	if !ok {
		return
	}

	if err := c.classService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// pathID parses an int64 path parameter, responding with a validation error
// on malformed input.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// decodeCandidate reads the request body into a field map for the
// service-layer validators, responding with a validation error when the body
// is not a JSON object.
func decodeCandidate(ctx *gin.Context) (validation.Candidate, bool) {
	candidate, err := validation.Decode(ctx.Request.Body)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return candidate, true
}
