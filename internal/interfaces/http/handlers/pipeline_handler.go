package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/internal/interfaces/http/middleware"
	"sales-crm.backend/internal/interfaces/http/response"
	"sales-crm.backend/internal/usecases"
)

type PipelineHandler struct {
	pipelineUsecase *usecases.PipelineUsecase
	stageRepo       repositories.StageRepository
}

func NewPipelineHandler(pipelineUsecase *usecases.PipelineUsecase, stageRepo repositories.StageRepository) *PipelineHandler {
	return &PipelineHandler{pipelineUsecase: pipelineUsecase, stageRepo: stageRepo}
}

// GetPipeline returns the full board: every stage with all its deals,
// optionally filtered to one owner. Totals are summed over the filtered set.
// GET /api/v1/pipeline?userId=&sortBy=
func (h *PipelineHandler) GetPipeline(c *gin.Context) {
	var filterUserID *uint
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid userId filter"))
			return
		}
		uid := uint(id)
		filterUserID = &uid
	}

	sortBy := entities.DealSort(c.Query("sortBy"))
	switch sortBy {
	case entities.DealSortUpdatedDesc, entities.DealSortValueDesc, entities.DealSortValueAsc, entities.DealSortNameAsc:
	default:
		response.Error(c, domainerrors.BadRequest("invalid sortBy"))
		return
	}

	columns, err := h.pipelineUsecase.GetPipeline(c.Request.Context(), filterUserID, sortBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stages": columns})
}

// ListStages returns the pipeline stages in board order.
// GET /api/v1/pipeline/stages
func (h *PipelineHandler) ListStages(c *gin.Context) {
	stages, err := h.stageRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stages": stages})
}

// MoveDealStage reassigns a deal to a stage and logs the move.
// PATCH /api/v1/deals/:id/stage
func (h *PipelineHandler) MoveDealStage(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("session not found"))
		return
	}

	dealID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid deal ID"))
		return
	}

	var input struct {
		StageID uint `json:"stageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	deal, err := h.pipelineUsecase.MoveDealStage(c.Request.Context(), session, dealID, input.StageID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("deal or stage not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Deal stage updated",
		"deal":    deal,
	})
}
