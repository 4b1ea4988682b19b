package inventory

import (
	"time"

	"github.com/google/uuid"
)

// EventType tipo de cambio ocurrido en el inventario.
type EventType string

const (
	EventPartAdded          EventType = "part.added"
	EventPartUpdated        EventType = "part.updated"
	EventPartDeleted        EventType = "part.deleted"
	EventProductAdded       EventType = "product.added"
	EventProductUpdated     EventType = "product.updated"
	EventProductDeleted     EventType = "product.deleted"
	EventAssociationAdded   EventType = "product.part_associated"
	EventAssociationRemoved EventType = "product.part_dissociated"
)

// Entity devuelve "part" o "product" según el tipo de evento.
func (t EventType) Entity() string {
	switch t {
	case EventPartAdded, EventPartUpdated, EventPartDeleted:
		return "part"
	default:
		return "product"
	}
}

// Event notifica una mutación ya aplicada. Lleva los tamaños del inventario tras el cambio
// para que los suscriptores no tengan que volver a consultar el store.
type Event struct {
	ID           uuid.UUID
	Type         EventType
	EntityID     int
	RelatedID    int // pieza involucrada en eventos de asociación
	PartCount    int
	ProductCount int
	OccurredAt   time.Time
}

// NewEvent construye un evento con ID y marca de tiempo.
func NewEvent(t EventType, entityID int) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		EntityID:   entityID,
		OccurredAt: time.Now(),
	}
}

// Listener recibe eventos de forma síncrona, fuera del lock del store.
type Listener func(Event)
