package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/middleware"
)

// MeetingController handles meeting time-slot operations
type MeetingController struct {
	meetingService *services.MeetingService
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService *services.MeetingService) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
	}
}

// GetAllMeetings retrieves all meetings
// @Summary Get all meetings
// @Description Retrieves all meeting time slots ordered by ID
// @Tags meetings
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Meeting} "Meetings retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings [get]
func (c *MeetingController) GetAllMeetings(ctx *gin.Context) {
	meetings, err := c.meetingService.GetAllMeetings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meetings,
		Timestamp: time.Now(),
	})
}

// GetMeetingByID retrieves a meeting by ID
// @Summary Get meeting by ID
// @Description Retrieves a specific meeting by its ID
// @Tags meetings
// @Accept json
// @Produce json
// @Param mid path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=models.Meeting} "Meeting retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid meeting ID"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings/{mid} [get]
func (c *MeetingController) GetMeetingByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "mid")
	if !ok {
		return
	}

	meeting, err := c.meetingService.GetMeetingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meeting,
		Timestamp: time.Now(),
	})
}

// CreateMeeting handles meeting creation
// @Summary Create a new meeting
// @Description Creates a new meeting time slot; a slot with the same course code, times and days is rejected
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Meeting true "Meeting information"
// @Success 201 {object} dto.APIResponse{data=models.Meeting} "Meeting created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate meeting"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx *gin.Context) {
	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	meeting, err := c.meetingService.CreateMeeting(ctx, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      meeting,
		Timestamp: time.Now(),
	})
}

// UpdateMeeting handles meeting updates
// @Summary Update a meeting
// @Description Updates an existing meeting with the provided fields
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mid path int true "Meeting ID"
// @Param request body models.Meeting true "Meeting fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Meeting} "Meeting updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings/{mid} [put]
func (c *MeetingController) UpdateMeeting(ctx *gin.Context) {
	id, ok := pathID(ctx, "mid")
	if !ok {
		return
	}

	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	meeting, err := c.meetingService.UpdateMeeting(ctx, id, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      meeting,
		Timestamp: time.Now(),
	})
}

// DeleteMeeting deletes a meeting
// @Summary Delete a meeting
// @Description Deletes a meeting by its ID
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mid path int true "Meeting ID"
// @Success 204 "Meeting deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid meeting ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /meetings/{mid} [delete]
func (c *MeetingController) DeleteMeeting(ctx *gin.Context) {
	id, ok := pathID(ctx, "mid")
	if !ok {
		return
	}

	if err := c.meetingService.DeleteMeeting(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
