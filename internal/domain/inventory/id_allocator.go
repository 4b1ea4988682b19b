package inventory

import "sync"

// DefaultIDSeed primer ID que entrega un asignador nuevo.
const DefaultIDSeed = 1

// IDAllocator entrega IDs crecientes para un tipo de entidad, saltando los que ya existen en inventario.
// Cada store tiene el suyo (uno para piezas, otro para productos), así los tests pueden sembrarlo.
type IDAllocator struct {
	mu   sync.Mutex
	next int
}

// NewIDAllocator crea un asignador que empieza en seed (DefaultIDSeed si seed < 1).
func NewIDAllocator(seed int) *IDAllocator {
	a := &IDAllocator{}
	a.Reset(seed)
	return a
}

// Reset reinicia el contador.
func (a *IDAllocator) Reset(seed int) {
	if seed < 1 {
		seed = DefaultIDSeed
	}
	a.mu.Lock()
	a.next = seed
	a.mu.Unlock()
}

// Next toma el valor actual del contador y lo avanza; repite mientras exists reporte que el ID ya está en uso.
// exists puede ser nil.
func (a *IDAllocator) Next(exists func(id int) bool) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	for {
		id := a.next
		a.next++
		if exists == nil || !exists(id) {
			return id
		}
	}
}
