package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schedulocity/internal/app/controllers"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/middleware"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Auth          *controllers.AuthController
	Dashboard     *controllers.DashboardController
	Directory     *controllers.DirectoryController
	Timetable     *controllers.TimetableController
	Faculty       *controllers.FacultyController
	LeaveApproval *controllers.LeaveApprovalController
	System        *controllers.SystemController
	Events        *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.System.Health)

	// --- Public Auth routes ---
	v1.POST("/auth/login", c.Auth.Login)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireSession())

	authenticated.POST("/auth/logout", c.Auth.Logout)

	session := authenticated.Group("/session")
	{
		session.GET("", c.Auth.GetSession)
		session.PUT("/view", c.Auth.Navigate)
		session.PUT("/sidebar", c.Auth.SetSidebar)
		session.GET("/events", c.Events.HandleConnection)
	}

	authenticated.GET("/dashboard", authMiddleware.ViewRequired(models.ViewDashboard), c.Dashboard.Dashboard)

	// faculty views
	authenticated.GET("/schedule", authMiddleware.ViewRequired(models.ViewSchedule), c.Timetable.List)

	availability := authenticated.Group("/availability")
	availability.Use(authMiddleware.ViewRequired(models.ViewAvailability))
	{
		availability.GET("", c.Faculty.GetAvailability)
		availability.PUT("/preferences", c.Faculty.UpdatePreferences)
		availability.PUT("/status", c.Faculty.UpdateStatus)
	}

	leaveRequests := authenticated.Group("/leave-requests")
	leaveRequests.Use(authMiddleware.ViewRequired(models.ViewLeaveRequests))
	{
		leaveRequests.GET("", c.Faculty.ListLeaveRequests)
		leaveRequests.POST("", c.Faculty.SubmitLeaveRequest)
	}

	profile := authenticated.Group("/profile")
	profile.Use(authMiddleware.ViewRequired(models.ViewProfile))
	{
		profile.GET("", c.Faculty.GetProfile)
		profile.PUT("", c.Faculty.UpdateProfile)
	}

	// hod and administrator views
	timetable := authenticated.Group("/timetable")
	timetable.Use(authMiddleware.ViewRequired(models.ViewTimetable))
	{
		timetable.GET("", c.Timetable.List)
		timetable.GET("/conflicts", c.Timetable.Conflicts)
	}

	authenticated.GET("/faculty", authMiddleware.ViewRequired(models.ViewFaculty), c.Directory.ListFaculty)
	authenticated.GET("/subjects", authMiddleware.ViewRequired(models.ViewSubjects), c.Directory.ListSubjects)
	authenticated.GET("/reports", authMiddleware.ViewRequired(models.ViewReports), c.Dashboard.Reports)

	approvals := authenticated.Group("/leave-approvals")
	approvals.Use(authMiddleware.ViewRequired(models.ViewLeaveApprovals))
	{
		approvals.GET("", c.LeaveApproval.List)
		approvals.POST("/:id/approve", c.LeaveApproval.Approve)
		approvals.POST("/:id/reject", c.LeaveApproval.Reject)
	}

	// administrator views
	resources := authenticated.Group("/resources")
	resources.Use(authMiddleware.ViewRequired(models.ViewResources))
	{
		resources.GET("", c.Directory.ListResources)
		resources.GET("/:kind/:id", c.Directory.GetResource)
	}

	authenticated.GET("/analytics", authMiddleware.ViewRequired(models.ViewAnalytics), c.Dashboard.Analytics)

	systemConfig := authenticated.Group("/system-config")
	systemConfig.Use(authMiddleware.ViewRequired(models.ViewSystemConfig))
	{
		systemConfig.GET("", c.System.GetConfig)
		systemConfig.PUT("/:section", c.System.UpdateConfigSection)
	}

	data := authenticated.Group("/data-management")
	data.Use(authMiddleware.ViewRequired(models.ViewDataManagement))
	{
		data.GET("/stats", c.System.DataStats)
		data.GET("/export", c.System.Export)
		data.GET("/backups", c.System.ListBackups)
		data.POST("/backups", c.System.CreateBackup)
		data.GET("/backups/:name", c.System.DownloadBackup)
		data.DELETE("/backups/:name", c.System.DeleteBackup)
		data.POST("/backups/:name/restore", c.System.RestoreBackup)
	}
}
