package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/interfaces/http/middleware"
	"sales-crm.backend/internal/interfaces/http/response"
	"sales-crm.backend/internal/usecases"
)

type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login verifies credentials and issues a session token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("invalid username or password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetMe returns the session user's profile.
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("session not found"))
		return
	}

	user, err := h.authUsecase.GetMe(c.Request.Context(), session)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("user not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
