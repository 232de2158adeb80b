package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/app/services"
	"github.com/segfault/coursecatalog/internal/middleware"
)

// ReportController serves the aggregated catalog reports
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// TopRoomsByCapacity ranks rooms in a building by capacity
// @Summary Top rooms by capacity
// @Description Retrieves the largest rooms of a building by seating capacity
// @Tags reports
// @Accept json
// @Produce json
// @Param building path string true "Building name"
// @Success 200 {object} dto.APIResponse{data=[]reports.RoomCapacity} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/rooms/capacity/{building} [get]
func (c *ReportController) TopRoomsByCapacity(ctx *gin.Context) {
	result, err := c.reportService.TopRoomsByCapacity(ctx, ctx.Param("building"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// TopRoomsByRatio ranks rooms in a building by student-to-capacity ratio
// @Summary Top rooms by occupancy ratio
// @Description Retrieves the rooms of a building with the highest ratio of registered students to capacity
// @Tags reports
// @Accept json
// @Produce json
// @Param building path string true "Building name"
// @Success 200 {object} dto.APIResponse{data=[]reports.RoomRatio} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/rooms/ratio/{building} [get]
func (c *ReportController) TopRoomsByRatio(ctx *gin.Context) {
	result, err := c.reportService.TopRoomsByRatio(ctx, ctx.Param("building"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// TopClassesByRoom ranks classes by sections taught in a room
// @Summary Top classes in a room
// @Description Retrieves the classes with the most sections scheduled in a room
// @Tags reports
// @Accept json
// @Produce json
// @Param rid path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=[]reports.ClassCount} "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/classes/room/{rid} [get]
func (c *ReportController) TopClassesByRoom(ctx *gin.Context) {
	roomID, ok := pathID(ctx, "rid")
	if !ok {
		return
	}

	result, err := c.reportService.TopClassesByRoom(ctx, roomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// TopClassesBySemester ranks classes by sections offered in a semester
// @Summary Top classes in a semester
// @Description Retrieves the classes with the most sections offered in a given year and semester
// @Tags reports
// @Accept json
// @Produce json
// @Param year path int true "Academic year"
// @Param semester path string true "Semester name"
// @Success 200 {object} dto.APIResponse{data=[]reports.ClassCount} "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/classes/semester/{year}/{semester} [get]
func (c *ReportController) TopClassesBySemester(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")
		errorDetail = errorDetail.WithDetails("year must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.reportService.TopClassesBySemester(ctx, year, ctx.Param("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// TopMeetings ranks meetings by the number of sections using them
// @Summary Top meetings by section count
// @Description Retrieves the meeting time slots shared by the most sections
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]reports.MeetingCount} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/meetings/sections [get]
func (c *ReportController) TopMeetings(ctx *gin.Context) {
	result, err := c.reportService.TopMeetings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// TopPrerequisites ranks classes by how often they appear as a prerequisite
// @Summary Top prerequisite classes
// @Description Retrieves the classes most frequently required as prerequisites
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]reports.ClassCount} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/classes/prerequisites [get]
func (c *ReportController) TopPrerequisites(ctx *gin.Context) {
	result, err := c.reportService.TopPrerequisites(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// LeastOfferedClasses ranks classes by fewest sections offered
// @Summary Least offered classes
// @Description Retrieves the classes with the fewest scheduled sections
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]reports.ClassCount} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/classes/least-offered [get]
func (c *ReportController) LeastOfferedClasses(ctx *gin.Context) {
	result, err := c.reportService.LeastOfferedClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// SectionsPerYear counts sections offered per academic year
// @Summary Sections per year
// @Description Retrieves the number of sections offered for each academic year in ascending order
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]reports.YearCount} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/sections/year [get]
func (c *ReportController) SectionsPerYear(ctx *gin.Context) {
	result, err := c.reportService.SectionsPerYear(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
