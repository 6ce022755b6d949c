package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/interfaces/http/response"
	"sales-crm.backend/internal/usecases"
	"sales-crm.backend/pkg/utils"
)

type ContactHandler struct {
	contactUsecase *usecases.ContactUsecase
}

func NewContactHandler(contactUsecase *usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// Email carries no format tag: the raw JSON value may be padded, so the
// format check runs on the trimmed value instead.
type contactInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	AssignedTo *uint  `json:"assignedTo"`
}

var emailValidator = validator.New()

func validEmail(email string) bool {
	return emailValidator.Var(email, "required,email") == nil
}

// CreateContact creates a contact. Source defaults to "other" and status to
// "lead" when omitted.
// POST /api/v1/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	email := strings.TrimSpace(input.Email)
	if !validEmail(email) {
		response.Error(c, domainerrors.BadRequest("invalid email address"))
		return
	}

	contact := &entities.Contact{
		Name:       strings.TrimSpace(input.Name),
		Email:      email,
		Phone:      null.NewString(input.Phone, input.Phone != ""),
		Title:      null.NewString(input.Title, input.Title != ""),
		Company:    null.NewString(input.Company, input.Company != ""),
		Source:     input.Source,
		Status:     entities.ContactStatus(input.Status),
		AssignedTo: null.UintFromPtr(input.AssignedTo),
	}

	if err := h.contactUsecase.CreateContact(c.Request.Context(), contact); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Contact created",
		"contact": contact,
	})
}

// ListContacts returns contacts with optional search and pagination.
// GET /api/v1/contacts?search=&page=&limit=
func (h *ContactHandler) ListContacts(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, total, err := h.contactUsecase.ListContacts(c.Request.Context(), search, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"contacts":   items,
		"pagination": utils.CalculateMeta(total, page, limit),
	})
}

// GetContact returns one contact.
// GET /api/v1/contacts/:id
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid contact ID"))
		return
	}

	contact, err := h.contactUsecase.GetContact(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("contact not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}

// UpdateContact applies a full edit to a contact.
// PUT /api/v1/contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid contact ID"))
		return
	}

	existing, err := h.contactUsecase.GetContact(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("contact not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	email := strings.TrimSpace(input.Email)
	if !validEmail(email) {
		response.Error(c, domainerrors.BadRequest("invalid email address"))
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Email = email
	existing.Phone = null.NewString(input.Phone, input.Phone != "")
	existing.Title = null.NewString(input.Title, input.Title != "")
	existing.Company = null.NewString(input.Company, input.Company != "")
	if input.Source != "" {
		existing.Source = input.Source
	}
	if input.Status != "" {
		existing.Status = entities.ContactStatus(input.Status)
	}
	existing.AssignedTo = null.UintFromPtr(input.AssignedTo)

	if err := h.contactUsecase.UpdateContact(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("contact not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Contact updated",
		"contact": existing,
	})
}

// DeleteContact hard-deletes a contact.
// DELETE /api/v1/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid contact ID"))
		return
	}

	if err := h.contactUsecase.DeleteContact(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("contact not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Contact deleted"})
}
