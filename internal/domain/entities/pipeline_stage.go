package entities

import (
	"time"
)

// StageKind classifies a pipeline stage as still-in-play or terminal.
// Terminal stages are resolved by kind at query time instead of by a
// hard-coded ordinal position.
type StageKind string

const (
	StageKindOpen StageKind = "open"
	StageKindWon  StageKind = "won"
	StageKindLost StageKind = "lost"
)

// PipelineStage is a column of the deal pipeline. Order defines the
// left-to-right position; uniqueness of orders is expected from seed data
// but not enforced here.
type PipelineStage struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	Color     string    `json:"color"`
	Kind      StageKind `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}
