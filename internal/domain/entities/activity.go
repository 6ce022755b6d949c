package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ActivityType represents the kind of logged interaction
type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeNote    ActivityType = "note"
	ActivityTypeUpdate  ActivityType = "update"
)

// Activity is an append-only log entry. Activities are never updated or
// deleted.
type Activity struct {
	ID          uint         `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description null.String  `json:"description,omitempty"`
	UserID      uint         `json:"userId"`
	RelatedTo   *RelatedRef  `json:"relatedTo,omitempty"`
	Metadata    null.JSON    `json:"metadata,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
