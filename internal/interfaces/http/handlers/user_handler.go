package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/internal/interfaces/http/response"
)

type UserHandler struct {
	userRepo repositories.UserRepository
	teamRepo repositories.TeamRepository
}

func NewUserHandler(userRepo repositories.UserRepository, teamRepo repositories.TeamRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, teamRepo: teamRepo}
}

// ListUsers returns all user accounts, for owner filters and assignment
// pickers.
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListUserTeams returns the teams a user belongs to.
// GET /api/v1/users/:id/teams
func (h *UserHandler) ListUserTeams(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	teams, err := h.teamRepo.ListByUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}

// ListTeams returns all teams.
// GET /api/v1/teams
func (h *UserHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}
