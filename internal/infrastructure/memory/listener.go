package memory

import (
	"github.com/jhoicas/invmanagement/internal/domain/inventory"
	"github.com/jhoicas/invmanagement/pkg/logger"
)

// LogListener registra cada evento del inventario en nivel debug.
func LogListener(log *logger.Logger) inventory.Listener {
	return func(ev inventory.Event) {
		e := log.Debug().
			Str("event_id", ev.ID.String()).
			Str("type", string(ev.Type)).
			Int("entity_id", ev.EntityID).
			Int("parts", ev.PartCount).
			Int("products", ev.ProductCount)
		if ev.RelatedID != 0 {
			e = e.Int("part_id", ev.RelatedID)
		}
		e.Msg("inventario modificado")
	}
}
