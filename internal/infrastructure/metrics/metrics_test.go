package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invmanagement/internal/domain/entity"
	"github.com/jhoicas/invmanagement/internal/domain/inventory"
	"github.com/jhoicas/invmanagement/internal/infrastructure/memory"
)

func newPart() *entity.Part {
	return entity.NewInHouse(0, "Eje", decimal.NewFromInt(1), 1, 1, 1, 1)
}

func TestGauges_LeenElStore(t *testing.T) {
	parts, products := 4, 1
	m := New(func() (int, int) { return parts, products })
	assert.Equal(t, 4.0, testutil.ToFloat64(m.parts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.products))

	parts, products = 5, 0
	assert.Equal(t, 5.0, testutil.ToFloat64(m.parts))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.products))
}

func TestInventoryListener_CuentaMutaciones(t *testing.T) {
	m := New(func() (int, int) { return 0, 0 })
	l := m.InventoryListener()

	l(inventory.NewEvent(inventory.EventPartAdded, 5))
	l(inventory.NewEvent(inventory.EventPartAdded, 6))
	l(inventory.NewEvent(inventory.EventProductDeleted, 1))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("part", "part.added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("product", "product.deleted")))
}

// Un evento viejo entregado tarde no debe dejar el gauge detrás del store.
func TestGauges_EventoAtrasadoNoRetrocede(t *testing.T) {
	inv := memory.NewInventory(memory.Config{PartIDSeed: 1, ProductIDSeed: 1})
	m := New(inv.Counts)
	inv.Subscribe(m.InventoryListener())

	blocked := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	inv.Subscribe(func(ev inventory.Event) {
		if ev.Type == inventory.EventPartAdded && ev.PartCount == 1 {
			once.Do(func() {
				close(blocked)
				<-release
			})
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		inv.InsertPart(newPart())
	}()
	<-blocked
	inv.InsertPart(newPart())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.parts))

	close(release)
	<-done
	assert.Equal(t, 2.0, testutil.ToFloat64(m.parts))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("part", "part.added")))
}

func TestObserveHTTP(t *testing.T) {
	m := New(func() (int, int) { return 0, 0 })
	m.ObserveHTTP("GET", "/api/parts", "200", 0.01)
	m.ObserveHTTP("GET", "/api/parts", "200", 0.02)
	m.ObserveHTTP("POST", "/api/parts", "400", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/parts", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequests))

	n, err := testutil.GatherAndCount(m.Registry, "invmanagement_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
