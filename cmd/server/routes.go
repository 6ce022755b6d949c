package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sales-crm.backend/internal/interfaces/http/handlers"
	"sales-crm.backend/pkg/metrics"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	dashboardHandler  *handlers.DashboardHandler
	pipelineHandler   *handlers.PipelineHandler
	dealHandler       *handlers.DealHandler
	contactHandler    *handlers.ContactHandler
	taskHandler       *handlers.TaskHandler
	activityHandler   *handlers.ActivityHandler
	userHandler       *handlers.UserHandler
	sessionMiddleware gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine, m *metrics.Metrics) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	v1.Use(d.sessionMiddleware)
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authHandler.GetMe)
		}

		// Dashboard aggregate views
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/metrics", d.dashboardHandler.GetMetrics)
			dashboard.GET("/performance", d.dashboardHandler.GetSalesPerformance)
			dashboard.GET("/pipeline", d.dashboardHandler.GetPipelineOverview)
			dashboard.GET("/tasks", d.dashboardHandler.GetTodaysTasks)
			dashboard.GET("/contacts", d.dashboardHandler.GetRecentContacts)
			dashboard.GET("/activities", d.dashboardHandler.GetRecentActivities)
		}

		// Full pipeline board
		pipeline := v1.Group("/pipeline")
		{
			pipeline.GET("", d.pipelineHandler.GetPipeline)
			pipeline.GET("/stages", d.pipelineHandler.ListStages)
		}

		// Deal routes
		deals := v1.Group("/deals")
		{
			deals.POST("", d.dealHandler.CreateDeal)
			deals.GET("/:id", d.dealHandler.GetDeal)
			deals.PUT("/:id", d.dealHandler.UpdateDeal)
			deals.DELETE("/:id", d.dealHandler.DeleteDeal)
			deals.PATCH("/:id/stage", d.pipelineHandler.MoveDealStage)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.POST("", d.contactHandler.CreateContact)
			contacts.GET("", d.contactHandler.ListContacts)
			contacts.GET("/:id", d.contactHandler.GetContact)
			contacts.PUT("/:id", d.contactHandler.UpdateContact)
			contacts.DELETE("/:id", d.contactHandler.DeleteContact)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.POST("", d.taskHandler.CreateTask)
			tasks.GET("", d.taskHandler.ListRelatedTasks)
			tasks.GET("/:id", d.taskHandler.GetTask)
			tasks.PUT("/:id", d.taskHandler.UpdateTask)
			tasks.PATCH("/:id/toggle", d.taskHandler.ToggleTask)
			tasks.DELETE("/:id", d.taskHandler.DeleteTask)
		}

		// Activity routes (append-only)
		activities := v1.Group("/activities")
		{
			activities.POST("", d.activityHandler.LogActivity)
			activities.GET("", d.activityHandler.ListRelatedActivities)
		}

		// User and team lookups
		users := v1.Group("/users")
		{
			users.GET("", d.userHandler.ListUsers)
			users.GET("/:id/teams", d.userHandler.ListUserTeams)
		}
		teams := v1.Group("/teams")
		{
			teams.GET("", d.userHandler.ListTeams)
		}
	}
}
