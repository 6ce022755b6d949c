package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// DealSort enumerates the supported pipeline sort orders
type DealSort string

const (
	DealSortUpdatedDesc DealSort = ""
	DealSortValueDesc   DealSort = "value-desc"
	DealSortValueAsc    DealSort = "value-asc"
	DealSortNameAsc     DealSort = "name-asc"
)

// DefaultProbability is assigned when a deal is created without one.
// Probability is advisory, manually set state; it is never derived from the
// stage a deal sits in.
const DefaultProbability = 50

// Deal represents a sales opportunity. A deal always belongs to exactly one
// stage and one owner.
type Deal struct {
	ID                uint        `json:"id"`
	Name              string      `json:"name"`
	Description       null.String `json:"description,omitempty"`
	Value             float64     `json:"value"`
	StageID           uint        `json:"stageId"`
	ContactID         uint        `json:"contactId"`
	OwnerID           uint        `json:"ownerId"`
	ExpectedCloseDate null.Time   `json:"expectedCloseDate,omitempty"`
	Probability       int         `json:"probability"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`

	// Owner is populated on joined reads only
	Owner *User `json:"owner,omitempty"`
}
