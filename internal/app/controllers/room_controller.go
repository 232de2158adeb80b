package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/middleware"
)

// RoomController handles room inventory operations
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// GetAllRooms retrieves all rooms
// @Summary Get all rooms
// @Description Retrieves the full room inventory ordered by ID
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [get]
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAllRooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rooms,
		Timestamp: time.Now(),
	})
}

// GetRoomByID retrieves a room by ID
// @Summary Get room by ID
// @Description Retrieves a specific room by its ID
// @Tags rooms
// @Accept json
// @Produce json
// @Param rid path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{rid} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "rid")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// CreateRoom handles room creation
// @Summary Create a new room
// @Description Creates a new room; a room with the same building and number is rejected
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Room true "Room information"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate room"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	room, err := c.roomService.CreateRoom(ctx, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// UpdateRoom handles room updates
// @Summary Update a room
// @Description Updates an existing room with the provided fields
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rid path int true "Room ID"
// @Param request body models.Room true "Room fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{rid} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "rid")
	if !ok {
		return
	}

	candidate, ok := decodeCandidate(ctx)
	if !ok {
		return
	}

	room, err := c.roomService.UpdateRoom(ctx, id, candidate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Description Deletes a room by its ID
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rid path int true "Room ID"
// @Success 204 "Room deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{rid} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "rid")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
