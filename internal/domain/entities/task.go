package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// TaskPriority represents task urgency
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Task represents a to-do assigned to a user. Time is a free-text range
// ("9:00 AM - 10:00 AM") and is ordered lexically, not chronologically.
type Task struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description null.String  `json:"description,omitempty"`
	DueDate     null.Time    `json:"dueDate,omitempty"`
	Time        null.String  `json:"time,omitempty"`
	Completed   bool         `json:"completed"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  uint         `json:"assignedTo"`
	RelatedTo   *RelatedRef  `json:"relatedTo,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
