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

type DealHandler struct {
	dealUsecase *usecases.DealUsecase
}

func NewDealHandler(dealUsecase *usecases.DealUsecase) *DealHandler {
	return &DealHandler{dealUsecase: dealUsecase}
}

type dealInput struct {
	Name              string     `json:"name" binding:"required"`
	Description       string     `json:"description"`
	Value             float64    `json:"value"`
	StageID           uint       `json:"stageId" binding:"required"`
	ContactID         uint       `json:"contactId" binding:"required"`
	OwnerID           uint       `json:"ownerId"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
	Probability       *int       `json:"probability"`
}

// CreateDeal creates a deal. An absent owner defaults to the session user;
// an absent probability defaults to 50.
// POST /api/v1/deals
func (h *DealHandler) CreateDeal(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("session not found"))
		return
	}

	var input dealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if input.Value < 0 {
		response.Error(c, domainerrors.BadRequest("value must not be negative"))
		return
	}

	deal := &entities.Deal{
		Name:        strings.TrimSpace(input.Name),
		Description: null.NewString(input.Description, input.Description != ""),
		Value:       input.Value,
		StageID:     input.StageID,
		ContactID:   input.ContactID,
		OwnerID:     input.OwnerID,
		Probability: entities.DefaultProbability,
	}
	if deal.OwnerID == 0 {
		deal.OwnerID = session.UserID
	}
	if input.ExpectedCloseDate != nil {
		deal.ExpectedCloseDate = null.TimeFromPtr(input.ExpectedCloseDate)
	}
	if input.Probability != nil {
		deal.Probability = *input.Probability
	}

	if err := h.dealUsecase.CreateDeal(c.Request.Context(), deal); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Deal created",
		"deal":    deal,
	})
}

// GetDeal returns one deal with its owner joined.
// GET /api/v1/deals/:id
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid deal ID"))
		return
	}

	deal, err := h.dealUsecase.GetDeal(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("deal not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deal": deal})
}

// UpdateDeal applies a manual edit. Probability is taken as given; it is
// never recalculated from the stage.
// PUT /api/v1/deals/:id
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid deal ID"))
		return
	}

	existing, err := h.dealUsecase.GetDeal(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("deal not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input dealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if input.Value < 0 {
		response.Error(c, domainerrors.BadRequest("value must not be negative"))
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Description = null.NewString(input.Description, input.Description != "")
	existing.Value = input.Value
	existing.StageID = input.StageID
	existing.ContactID = input.ContactID
	if input.OwnerID != 0 {
		existing.OwnerID = input.OwnerID
	}
	existing.ExpectedCloseDate = null.TimeFromPtr(input.ExpectedCloseDate)
	if input.Probability != nil {
		existing.Probability = *input.Probability
	}

	if err := h.dealUsecase.UpdateDeal(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("deal not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Deal updated",
		"deal":    existing,
	})
}

// DeleteDeal removes a deal for good.
// DELETE /api/v1/deals/:id
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid deal ID"))
		return
	}

	if err := h.dealUsecase.DeleteDeal(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("deal not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Deal deleted"})
}
