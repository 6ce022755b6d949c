package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/interfaces/http/middleware"
	"sales-crm.backend/internal/interfaces/http/response"
	"sales-crm.backend/internal/usecases"
)

type ActivityHandler struct {
	activityUsecase *usecases.ActivityUsecase
}

func NewActivityHandler(activityUsecase *usecases.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{activityUsecase: activityUsecase}
}

// LogActivity appends a log entry authored by the session user. Entries are
// immutable once written.
// POST /api/v1/activities
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("session not found"))
		return
	}

	var input struct {
		Type        string               `json:"type" binding:"required"`
		Title       string               `json:"title" binding:"required"`
		Description string               `json:"description"`
		RelatedTo   *entities.RelatedRef `json:"relatedTo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	switch entities.ActivityType(input.Type) {
	case entities.ActivityTypeCall, entities.ActivityTypeEmail, entities.ActivityTypeMeeting,
		entities.ActivityTypeNote, entities.ActivityTypeUpdate:
	default:
		response.Error(c, domainerrors.BadRequest("invalid activity type"))
		return
	}

	activity := &entities.Activity{
		Type:        entities.ActivityType(input.Type),
		Title:       strings.TrimSpace(input.Title),
		Description: null.NewString(input.Description, input.Description != ""),
		RelatedTo:   input.RelatedTo,
	}

	if err := h.activityUsecase.LogActivity(c.Request.Context(), session, activity); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Activity logged",
		"activity": activity,
	})
}

// ListRelatedActivities returns the log entries attached to a deal or
// contact, newest first.
// GET /api/v1/activities?relatedType=deal|contact&relatedId=
func (h *ActivityHandler) ListRelatedActivities(c *gin.Context) {
	ref, ok := parseRelatedQuery(c)
	if !ok {
		response.Error(c, domainerrors.BadRequest("relatedType and relatedId are required"))
		return
	}

	activities, err := h.activityUsecase.GetActivitiesForRelated(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activities": activities})
}
