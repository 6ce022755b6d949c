package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ContactStatus represents a contact's lifecycle state
type ContactStatus string

const (
	ContactStatusLead     ContactStatus = "lead"
	ContactStatusCustomer ContactStatus = "customer"
	ContactStatusPartner  ContactStatus = "partner"
	ContactStatusInactive ContactStatus = "inactive"
)

// ContactSourceOther is the default lead source when none is supplied
const ContactSourceOther = "other"

// Contact represents a person or lead tracked in the CRM
type Contact struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      null.String   `json:"phone,omitempty"`
	Title      null.String   `json:"title,omitempty"`
	Company    null.String   `json:"company,omitempty"`
	Source     string        `json:"source"`
	Status     ContactStatus `json:"status"`
	AssignedTo null.Uint     `json:"assignedTo,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
