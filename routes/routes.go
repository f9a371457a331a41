package routes

import (
	"log"

	"github.com/jayspar44/sammy-sub000/config"
	"github.com/jayspar44/sammy-sub000/controllers"
	"github.com/jayspar44/sammy-sub000/middlewares"
	"github.com/jayspar44/sammy-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	planSvc := services.NewPlanService(config.DB)
	statsSvc := services.NewStatsService(config.DB)
	savingsSvc := services.NewSavingsService(config.DB)
	summarySvc := services.NewSummaryService()

	hub := services.NewRealtimeHub()
	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, pushSvc)

	planCtl := controllers.NewWeeklyPlanController(planSvc, statsSvc, savingsSvc)
	statsCtl := controllers.NewStatsController(statsSvc, savingsSvc, summarySvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.DELETE("/profile", controllers.DeleteAccount)

			user.POST("/weekly-plan", planCtl.SetWeeklyPlan)
			user.GET("/weekly-plan", planCtl.GetWeeklyPlan)
			user.PUT("/typical-week", planCtl.SetTypicalWeek)
			user.GET("/typical-week", planCtl.GetTypicalWeek)

			user.POST("/notifications/toggle", controllers.ToggleNotifications)
		}

		api.POST("/logs", controllers.UpsertLog)
		api.GET("/logs", controllers.ListLogs)
		api.GET("/alerts", controllers.ListAlerts)

		stats := api.Group("/stats")
		{
			stats.GET("/weekly-summary", statsCtl.GetWeeklySummary)
			stats.GET("/summary", statsCtl.GetRangeSummary)
			stats.GET("/cumulative", statsCtl.GetCumulative)
			stats.GET("/milestones", statsCtl.GetMilestones)
		}

		if pushSvc != nil {
			deviceCtl := controllers.NewDeviceController(pushSvc)
			devCtl := controllers.NewDevController(pushSvc)
			api.POST("/devices/register", deviceCtl.Register)
			api.POST("/dev/push-test", devCtl.PushTest)
		}
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rtCtl.AlertsWS)
	}

	return r
}
