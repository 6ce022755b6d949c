package entities

// RelatedKind tags which entity a task or activity points at
type RelatedKind string

const (
	RelatedKindDeal    RelatedKind = "deal"
	RelatedKindContact RelatedKind = "contact"
)

// RelatedRef is a tagged reference to a deal or a contact. The target is
// resolved per kind at query time; there is no foreign key behind it, so a
// ref can outlive its target.
type RelatedRef struct {
	Kind RelatedKind `json:"kind"`
	ID   uint        `json:"id"`
}
