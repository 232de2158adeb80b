package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/segfault/coursecatalog/internal/app/controllers"
	"github.com/segfault/coursecatalog/internal/app/models"
	"github.com/segfault/coursecatalog/internal/app/models/dto"
	"github.com/segfault/coursecatalog/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	classController *controllers.ClassController,
	sectionController *controllers.SectionController,
	meetingController *controllers.MeetingController,
	roomController *controllers.RoomController,
	requisiteController *controllers.RequisiteController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"service": "course-catalog-api", "status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public catalog reads ---
	classes := v1.Group("/classes")
	{
		classes.GET("", classController.GetAllClasses)
		classes.GET("/:classid", classController.GetClassByID)
	}

	sections := v1.Group("/sections")
	{
		sections.GET("", sectionController.GetAllSections)
		sections.GET("/:sid", sectionController.GetSectionByID)
	}

	meetings := v1.Group("/meetings")
	{
		meetings.GET("", meetingController.GetAllMeetings)
		meetings.GET("/:mid", meetingController.GetMeetingByID)
	}

	rooms := v1.Group("/rooms")
	{
		rooms.GET("", roomController.GetAllRooms)
		rooms.GET("/:rid", roomController.GetRoomByID)
	}

	requisites := v1.Group("/requisites")
	{
		requisites.GET("", requisiteController.GetAllRequisites)
		requisites.GET("/:classid/:reqid", requisiteController.GetRequisiteByKey)
	}

	// --- Public report routes ---
	reports := v1.Group("/reports")
	{
		reports.GET("/rooms/capacity/:building", reportController.TopRoomsByCapacity)
		reports.GET("/rooms/ratio/:building", reportController.TopRoomsByRatio)
		reports.GET("/classes/room/:rid", reportController.TopClassesByRoom)
		reports.GET("/classes/semester/:year/:semester", reportController.TopClassesBySemester)
		reports.GET("/classes/prerequisites", reportController.TopPrerequisites)
		reports.GET("/classes/least-offered", reportController.LeastOfferedClasses)
		reports.GET("/meetings/sections", reportController.TopMeetings)
		reports.GET("/sections/year", reportController.SectionsPerYear)
	}

	// --- Authenticated catalog writes (deletes are staff only) ---
	staffOnly := authMiddleware.RoleRequired(string(models.RoleStaff))

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		classesProtected := authenticated.Group("/classes")
		{
			classesProtected.POST("", classController.CreateClass)
			classesProtected.PUT("/:classid", classController.UpdateClass)
			classesProtected.DELETE("/:classid", staffOnly, classController.DeleteClass)
		}

		sectionsProtected := authenticated.Group("/sections")
		{
			sectionsProtected.POST("", sectionController.CreateSection)
			sectionsProtected.PUT("/:sid", sectionController.UpdateSection)
			sectionsProtected.DELETE("/:sid", staffOnly, sectionController.DeleteSection)
		}

		meetingsProtected := authenticated.Group("/meetings")
		{
			meetingsProtected.POST("", meetingController.CreateMeeting)
			meetingsProtected.PUT("/:mid", meetingController.UpdateMeeting)
			meetingsProtected.DELETE("/:mid", staffOnly, meetingController.DeleteMeeting)
		}

		roomsProtected := authenticated.Group("/rooms")
		{
			roomsProtected.POST("", roomController.CreateRoom)
			roomsProtected.PUT("/:rid", roomController.UpdateRoom)
			roomsProtected.DELETE("/:rid", staffOnly, roomController.DeleteRoom)
		}

		requisitesProtected := authenticated.Group("/requisites")
		{
			requisitesProtected.POST("", requisiteController.CreateRequisite)
			requisitesProtected.PUT("/:classid/:reqid", requisiteController.UpdateRequisite)
			requisitesProtected.DELETE("/:classid/:reqid", staffOnly, requisiteController.DeleteRequisite)
		}
	}
}
