package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"sales-crm.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:      &handlers.AuthHandler{},
		dashboardHandler: &handlers.DashboardHandler{},
		pipelineHandler:  &handlers.PipelineHandler{},
		dealHandler:      &handlers.DealHandler{},
		contactHandler:   &handlers.ContactHandler{},
		taskHandler:      &handlers.TaskHandler{},
		activityHandler:  &handlers.ActivityHandler{},
		userHandler:      &handlers.UserHandler{},
		sessionMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	routes := r.Routes()
	if len(routes) < 25 {
		t.Fatalf("expected full route set registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"GET", "/api/v1/auth/me"},
		{"GET", "/api/v1/dashboard/metrics"},
		{"GET", "/api/v1/dashboard/performance"},
		{"GET", "/api/v1/dashboard/pipeline"},
		{"GET", "/api/v1/dashboard/tasks"},
		{"GET", "/api/v1/dashboard/contacts"},
		{"GET", "/api/v1/dashboard/activities"},
		{"GET", "/api/v1/pipeline"},
		{"GET", "/api/v1/pipeline/stages"},
		{"POST", "/api/v1/deals"},
		{"PATCH", "/api/v1/deals/:id/stage"},
		{"PUT", "/api/v1/contacts/:id"},
		{"PATCH", "/api/v1/tasks/:id/toggle"},
		{"POST", "/api/v1/activities"},
		{"GET", "/api/v1/users/:id/teams"},
		{"GET", "/api/v1/teams"},
	}

	index := make(map[string]bool, len(routes))
	for _, route := range routes {
		index[route.Method+" "+route.Path] = true
	}
	for _, want := range expects {
		if !index[want.method+" "+want.path] {
			t.Fatalf("route %s %s not registered", want.method, want.path)
		}
	}
}
