package domain

// EntityID is a stable identifier for a domain entity, independent of its
// transient scene representation. The registry allocates IDs starting at 1.
type EntityID uint64

// NullEntity is the sentinel meaning "no entity".
const NullEntity EntityID = 0

// EntityKind classifies an entity for display
type EntityKind string

// Entity kinds
const (
	KindModel  EntityKind = "model"
	KindLight  EntityKind = "light"
	KindSensor EntityKind = "sensor"
	KindMarker EntityKind = "marker"
)

// Entity represents a registered domain object backed by a scene node
type Entity struct {
	ID   EntityID
	Name string
	Kind EntityKind
}
