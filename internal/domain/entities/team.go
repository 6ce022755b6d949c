package entities

import (
	"time"
)

// Team groups users for reporting purposes
type Team struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamMembership links a user to a team
type TeamMembership struct {
	UserID  uint `json:"userId"`
	TeamID  uint `json:"teamId"`
	IsAdmin bool `json:"isAdmin"`
}
