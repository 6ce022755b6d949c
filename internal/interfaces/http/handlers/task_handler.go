package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/interfaces/http/middleware"
	"sales-crm.backend/internal/interfaces/http/response"
	"sales-crm.backend/internal/usecases"
)

type TaskHandler struct {
	taskUsecase *usecases.TaskUsecase
}

func NewTaskHandler(taskUsecase *usecases.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

type taskInput struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	DueDate     *time.Time           `json:"dueDate"`
	Time        string               `json:"time"`
	Priority    string               `json:"priority"`
	AssignedTo  uint                 `json:"assignedTo"`
	RelatedTo   *entities.RelatedRef `json:"relatedTo"`
}

// CreateTask creates a task. An absent assignee defaults to the session
// user; an absent priority defaults to medium.
// POST /api/v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("session not found"))
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	task := &entities.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: null.NewString(input.Description, input.Description != ""),
		DueDate:     null.TimeFromPtr(input.DueDate),
		Time:        null.NewString(input.Time, input.Time != ""),
		Priority:    entities.TaskPriority(input.Priority),
		AssignedTo:  input.AssignedTo,
		RelatedTo:   input.RelatedTo,
	}
	if task.AssignedTo == 0 {
		task.AssignedTo = session.UserID
	}
	if task.Priority == "" {
		task.Priority = entities.TaskPriorityMedium
	}

	if err := h.taskUsecase.CreateTask(c.Request.Context(), task); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Task created",
		"task":    task,
	})
}

// GetTask returns one task.
// GET /api/v1/tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid task ID"))
		return
	}

	task, err := h.taskUsecase.GetTask(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("task not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task": task})
}

// ListRelatedTasks returns the tasks attached to a deal or contact.
// GET /api/v1/tasks?relatedType=deal|contact&relatedId=
func (h *TaskHandler) ListRelatedTasks(c *gin.Context) {
	ref, ok := parseRelatedQuery(c)
	if !ok {
		response.Error(c, domainerrors.BadRequest("relatedType and relatedId are required"))
		return
	}

	tasks, err := h.taskUsecase.GetTasksForRelated(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

// UpdateTask applies a full edit to a task.
// PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid task ID"))
		return
	}

	existing, err := h.taskUsecase.GetTask(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("task not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input taskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = null.NewString(input.Description, input.Description != "")
	existing.DueDate = null.TimeFromPtr(input.DueDate)
	existing.Time = null.NewString(input.Time, input.Time != "")
	if input.Priority != "" {
		existing.Priority = entities.TaskPriority(input.Priority)
	}
	if input.AssignedTo != 0 {
		existing.AssignedTo = input.AssignedTo
	}
	existing.RelatedTo = input.RelatedTo

	if err := h.taskUsecase.UpdateTask(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("task not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Task updated",
		"task":    existing,
	})
}

// ToggleTask flips the completed flag.
// PATCH /api/v1/tasks/:id/toggle
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid task ID"))
		return
	}

	if err := h.taskUsecase.ToggleTaskCompletion(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("task not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Task toggled"})
}

// DeleteTask removes a task.
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid task ID"))
		return
	}

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("task not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Task deleted"})
}
