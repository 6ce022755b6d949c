package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/interfaces/http/middleware"
	"sales-crm.backend/internal/interfaces/http/response"
	"sales-crm.backend/internal/usecases"
)

// DashboardHandler serves the dashboard aggregate views: KPI cards, the
// sales-performance series, the pipeline overview, and the side feeds.
type DashboardHandler struct {
	metricsUsecase  *usecases.MetricsUsecase
	pipelineUsecase *usecases.PipelineUsecase
	taskUsecase     *usecases.TaskUsecase
	contactUsecase  *usecases.ContactUsecase
	activityUsecase *usecases.ActivityUsecase
}

func NewDashboardHandler(
	metricsUsecase *usecases.MetricsUsecase,
	pipelineUsecase *usecases.PipelineUsecase,
	taskUsecase *usecases.TaskUsecase,
	contactUsecase *usecases.ContactUsecase,
	activityUsecase *usecases.ActivityUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		metricsUsecase:  metricsUsecase,
		pipelineUsecase: pipelineUsecase,
		taskUsecase:     taskUsecase,
		contactUsecase:  contactUsecase,
		activityUsecase: activityUsecase,
	}
}

// GetMetrics returns the KPI card values with month-over-month changes.
// GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.metricsUsecase.GetDashboardMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, metrics)
}

// GetSalesPerformance returns the bucketed Closed-Won value series.
// GET /api/v1/dashboard/performance?period=monthly|quarterly|yearly
func (h *DashboardHandler) GetSalesPerformance(c *gin.Context) {
	period := entities.PerformancePeriod(c.DefaultQuery("period", string(entities.PeriodMonthly)))

	points, err := h.metricsUsecase.GetSalesPerformance(c.Request.Context(), period)
	if err != nil {
		if err == domainerrors.ErrUnknownPeriod {
			response.Error(c, domainerrors.BadRequest("period must be monthly, quarterly or yearly"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"period": period, "data": points})
}

// GetPipelineOverview returns every stage with its five most recently
// updated deals and full-stage totals.
// GET /api/v1/dashboard/pipeline
func (h *DashboardHandler) GetPipelineOverview(c *gin.Context) {
	columns, err := h.pipelineUsecase.GetPipelineOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stages": columns})
}

// GetTodaysTasks returns the session user's tasks due today.
// GET /api/v1/dashboard/tasks
func (h *DashboardHandler) GetTodaysTasks(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("session not found"))
		return
	}

	tasks, err := h.taskUsecase.GetTodaysTasks(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

// GetRecentContacts returns the newest contacts for the dashboard feed.
// GET /api/v1/dashboard/contacts
func (h *DashboardHandler) GetRecentContacts(c *gin.Context) {
	contacts, err := h.contactUsecase.GetRecentContacts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contacts": contacts})
}

// GetRecentActivities returns the newest log entries, most recent first.
// GET /api/v1/dashboard/activities
func (h *DashboardHandler) GetRecentActivities(c *gin.Context) {
	activities, err := h.activityUsecase.GetRecentActivities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activities": activities})
}
