// Package memory implementa el inventario en memoria: la única fuente de verdad de piezas y productos
// durante la vida del proceso. No hay persistencia.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/invmanagement/internal/domain"
	"github.com/jhoicas/invmanagement/internal/domain/entity"
	"github.com/jhoicas/invmanagement/internal/domain/inventory"
	"github.com/jhoicas/invmanagement/internal/domain/repository"
)

// Ensure Inventory implements repository.InventoryRepository.
var _ repository.InventoryRepository = (*Inventory)(nil)

// Config semillas de los asignadores de ID.
type Config struct {
	PartIDSeed    int
	ProductIDSeed int
}

// Inventory guarda las piezas y productos en orden de inserción.
// Un único lock protege cada operación; los listeners se invocan después de soltarlo.
// Los productos almacenados referencian las piezas almacenadas (mismo puntero).
type Inventory struct {
	mu         sync.RWMutex
	parts      []*entity.Part
	products   []*entity.Product
	partIDs    *inventory.IDAllocator
	productIDs *inventory.IDAllocator

	lmu          sync.RWMutex
	listeners    map[int]inventory.Listener
	nextListener int
}

// NewInventory crea un inventario vacío.
func NewInventory(cfg Config) *Inventory {
	return &Inventory{
		partIDs:    inventory.NewIDAllocator(cfg.PartIDSeed),
		productIDs: inventory.NewIDAllocator(cfg.ProductIDSeed),
		listeners:  make(map[int]inventory.Listener),
	}
}

// ─── Piezas ────────────────────────────────────────────────────────────────

// AddPart agrega la pieza tal cual, sin verificar unicidad del ID (el llamador ya lo asignó).
// Reusar el ID de una pieza borrada no la reenlaza con las copias colgantes que guardan los productos
// en ReplacePart; bind (AddProduct, UpdateProduct, ReplaceProduct) sí enlaza por ID.
func (inv *Inventory) AddPart(part *entity.Part) {
	inv.mu.Lock()
	inv.parts = append(inv.parts, part.Clone())
	ev := inv.event(inventory.EventPartAdded, part.ID)
	inv.mu.Unlock()
	inv.notify(ev)
}

// InsertPart asigna un ID nuevo y agrega la pieza en un solo paso.
func (inv *Inventory) InsertPart(part *entity.Part) *entity.Part {
	inv.mu.Lock()
	stored := part.Clone()
	stored.ID = inv.partIDs.Next(func(id int) bool { return inv.indexOfPart(id) >= 0 })
	inv.parts = append(inv.parts, stored)
	ev := inv.event(inventory.EventPartAdded, stored.ID)
	out := stored.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out
}

// LookupPartByID búsqueda lineal; devuelve la primera coincidencia.
func (inv *Inventory) LookupPartByID(id int) (*entity.Part, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if i := inv.indexOfPart(id); i >= 0 {
		return inv.parts[i].Clone(), true
	}
	return nil, false
}

// LookupPartsByName piezas cuyo nombre empieza con la consulta, sin distinguir mayúsculas ni espacios.
func (inv *Inventory) LookupPartsByName(query string) []*entity.Part {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*entity.Part, 0)
	for _, p := range inv.parts {
		if inventory.MatchesPrefix(p.Name, query) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// IndexOfPart posición de la pieza en el inventario, -1 si no está.
func (inv *Inventory) IndexOfPart(id int) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.indexOfPart(id)
}

// UpdatePart reemplaza la pieza en la posición index. No propaga a productos; ver ReplacePart.
func (inv *Inventory) UpdatePart(index int, part *entity.Part) error {
	inv.mu.Lock()
	if index < 0 || index >= len(inv.parts) {
		n := len(inv.parts)
		inv.mu.Unlock()
		return fmt.Errorf("%w: pieza %d de %d", domain.ErrIndexOutOfRange, index, n)
	}
	inv.parts[index] = part.Clone()
	ev := inv.event(inventory.EventPartUpdated, part.ID)
	inv.mu.Unlock()
	inv.notify(ev)
	return nil
}

// ReplacePart reemplaza la pieza con ese ID por part (conservando el ID) y cambia la referencia
// en cada producto que la tenga asociada, en la misma posición.
func (inv *Inventory) ReplacePart(id int, part *entity.Part) (*entity.Part, error) {
	inv.mu.Lock()
	i := inv.indexOfPart(id)
	if i < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrPartNotFound, id)
	}
	old := inv.parts[i]
	stored := part.Clone()
	stored.ID = id
	inv.parts[i] = stored
	// Se recorre una copia de la lista de productos; solo se muta la lista de asociaciones de cada uno.
	for _, prod := range append([]*entity.Product(nil), inv.products...) {
		prod.ReplaceAssociatedPart(old, stored)
	}
	ev := inv.event(inventory.EventPartUpdated, id)
	out := stored.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out, nil
}

// DeletePart quita la pieza por ID. Devuelve false si no estaba. Los productos que la referencian la conservan.
func (inv *Inventory) DeletePart(id int) bool {
	inv.mu.Lock()
	ok := inv.deletePart(id)
	var ev inventory.Event
	if ok {
		ev = inv.event(inventory.EventPartDeleted, id)
	}
	inv.mu.Unlock()
	if ok {
		inv.notify(ev)
	}
	return ok
}

// RemovePart borra la pieza y devuelve los IDs de los productos que quedan referenciándola.
// Con strict se niega a borrarla si algún producto la usa.
func (inv *Inventory) RemovePart(id int, strict bool) ([]int, error) {
	inv.mu.Lock()
	if inv.indexOfPart(id) < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrPartNotFound, id)
	}
	affected := inv.productsReferencing(id)
	if strict && len(affected) > 0 {
		inv.mu.Unlock()
		return affected, fmt.Errorf("%w: id %d", domain.ErrPartInUse, id)
	}
	inv.deletePart(id)
	ev := inv.event(inventory.EventPartDeleted, id)
	inv.mu.Unlock()
	inv.notify(ev)
	return affected, nil
}

// AllParts copia de todas las piezas en orden de inserción.
func (inv *Inventory) AllParts() []*entity.Part {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*entity.Part, len(inv.parts))
	for i, p := range inv.parts {
		out[i] = p.Clone()
	}
	return out
}

// ProductsReferencing IDs de los productos que tienen asociada la pieza.
func (inv *Inventory) ProductsReferencing(partID int) []int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.productsReferencing(partID)
}

// ─── Productos ─────────────────────────────────────────────────────────────

// AddProduct agrega el producto tal cual, sin verificar unicidad del ID.
func (inv *Inventory) AddProduct(product *entity.Product) {
	inv.mu.Lock()
	inv.products = append(inv.products, inv.bind(product))
	ev := inv.event(inventory.EventProductAdded, product.ID)
	inv.mu.Unlock()
	inv.notify(ev)
}

// InsertProduct asigna un ID nuevo y agrega el producto en un solo paso.
func (inv *Inventory) InsertProduct(product *entity.Product) *entity.Product {
	inv.mu.Lock()
	stored := inv.bind(product)
	stored.ID = inv.productIDs.Next(func(id int) bool { return inv.indexOfProduct(id) >= 0 })
	inv.products = append(inv.products, stored)
	ev := inv.event(inventory.EventProductAdded, stored.ID)
	out := stored.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out
}

// LookupProductByID búsqueda lineal; devuelve la primera coincidencia.
func (inv *Inventory) LookupProductByID(id int) (*entity.Product, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if i := inv.indexOfProduct(id); i >= 0 {
		return inv.products[i].Clone(), true
	}
	return nil, false
}

// LookupProductsByName productos cuyo nombre empieza con la consulta, sin distinguir mayúsculas ni espacios.
func (inv *Inventory) LookupProductsByName(query string) []*entity.Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, p := range inv.products {
		if inventory.MatchesPrefix(p.Name, query) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// IndexOfProduct posición del producto en el inventario, -1 si no está.
func (inv *Inventory) IndexOfProduct(id int) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.indexOfProduct(id)
}

// UpdateProduct reemplaza el producto en la posición index.
func (inv *Inventory) UpdateProduct(index int, product *entity.Product) error {
	inv.mu.Lock()
	if index < 0 || index >= len(inv.products) {
		n := len(inv.products)
		inv.mu.Unlock()
		return fmt.Errorf("%w: producto %d de %d", domain.ErrIndexOutOfRange, index, n)
	}
	inv.products[index] = inv.bind(product)
	ev := inv.event(inventory.EventProductUpdated, product.ID)
	inv.mu.Unlock()
	inv.notify(ev)
	return nil
}

// ReplaceProduct reemplaza el producto con ese ID, conservando el ID.
func (inv *Inventory) ReplaceProduct(id int, product *entity.Product) (*entity.Product, error) {
	inv.mu.Lock()
	i := inv.indexOfProduct(id)
	if i < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	stored := inv.bind(product)
	stored.ID = id
	inv.products[i] = stored
	ev := inv.event(inventory.EventProductUpdated, id)
	out := stored.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out, nil
}

// ReplaceProductKeepingParts reemplaza los datos del producto con ese ID y conserva su lista de
// piezas asociadas tal como está en el inventario en ese momento. Las asociaciones de product se ignoran.
func (inv *Inventory) ReplaceProductKeepingParts(id int, product *entity.Product) (*entity.Product, error) {
	inv.mu.Lock()
	i := inv.indexOfProduct(id)
	if i < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	stored := product.Clone()
	stored.ID = id
	stored.SetAssociatedParts(inv.products[i].AssociatedParts())
	inv.products[i] = stored
	ev := inv.event(inventory.EventProductUpdated, id)
	out := stored.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out, nil
}

// DeleteProduct quita el producto por ID sin ninguna guarda. Devuelve false si no estaba.
func (inv *Inventory) DeleteProduct(id int) bool {
	inv.mu.Lock()
	ok := inv.deleteProduct(id)
	var ev inventory.Event
	if ok {
		ev = inv.event(inventory.EventProductDeleted, id)
	}
	inv.mu.Unlock()
	if ok {
		inv.notify(ev)
	}
	return ok
}

// RemoveProduct borrado con guarda: un producto con piezas asociadas no se puede borrar.
func (inv *Inventory) RemoveProduct(id int) error {
	inv.mu.Lock()
	i := inv.indexOfProduct(id)
	if i < 0 {
		inv.mu.Unlock()
		return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	if inv.products[i].HasAssociatedParts() {
		inv.mu.Unlock()
		return fmt.Errorf("%w: id %d", domain.ErrProductHasParts, id)
	}
	inv.deleteProduct(id)
	ev := inv.event(inventory.EventProductDeleted, id)
	inv.mu.Unlock()
	inv.notify(ev)
	return nil
}

// AssociatePart agrega al final de la lista del producto una referencia a la pieza almacenada.
func (inv *Inventory) AssociatePart(productID, partID int) (*entity.Product, error) {
	inv.mu.Lock()
	pi := inv.indexOfProduct(productID)
	if pi < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, productID)
	}
	ki := inv.indexOfPart(partID)
	if ki < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrPartNotFound, partID)
	}
	prod := inv.products[pi]
	prod.AddAssociatedPart(inv.parts[ki])
	ev := inv.event(inventory.EventAssociationAdded, productID)
	ev.RelatedID = partID
	out := prod.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out, nil
}

// DissociatePart quita la primera ocurrencia de la pieza en la lista del producto.
// La pieza sigue en el inventario.
func (inv *Inventory) DissociatePart(productID, partID int) (*entity.Product, error) {
	inv.mu.Lock()
	pi := inv.indexOfProduct(productID)
	if pi < 0 {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, productID)
	}
	prod := inv.products[pi]
	if !prod.DeleteAssociatedPart(partID) {
		inv.mu.Unlock()
		return nil, fmt.Errorf("%w: id %d no está asociada al producto %d", domain.ErrPartNotFound, partID, productID)
	}
	ev := inv.event(inventory.EventAssociationRemoved, productID)
	ev.RelatedID = partID
	out := prod.Clone()
	inv.mu.Unlock()
	inv.notify(ev)
	return out, nil
}

// AllProducts copia de todos los productos en orden de inserción.
func (inv *Inventory) AllProducts() []*entity.Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*entity.Product, len(inv.products))
	for i, p := range inv.products {
		out[i] = p.Clone()
	}
	return out
}

// Counts cantidad de piezas y productos.
func (inv *Inventory) Counts() (parts, products int) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.parts), len(inv.products)
}

// ─── Suscripciones ─────────────────────────────────────────────────────────

// Subscribe registra un listener para cada mutación exitosa. La función devuelta lo da de baja.
func (inv *Inventory) Subscribe(l inventory.Listener) (unsubscribe func()) {
	inv.lmu.Lock()
	id := inv.nextListener
	inv.nextListener++
	inv.listeners[id] = l
	inv.lmu.Unlock()
	return func() {
		inv.lmu.Lock()
		delete(inv.listeners, id)
		inv.lmu.Unlock()
	}
}

// ─── Internos (requieren inv.mu tomado) ────────────────────────────────────

func (inv *Inventory) indexOfPart(id int) int {
	for i, p := range inv.parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (inv *Inventory) indexOfProduct(id int) int {
	for i, p := range inv.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (inv *Inventory) deletePart(id int) bool {
	i := inv.indexOfPart(id)
	if i < 0 {
		return false
	}
	inv.parts = append(inv.parts[:i], inv.parts[i+1:]...)
	return true
}

func (inv *Inventory) deleteProduct(id int) bool {
	i := inv.indexOfProduct(id)
	if i < 0 {
		return false
	}
	inv.products = append(inv.products[:i], inv.products[i+1:]...)
	return true
}

func (inv *Inventory) productsReferencing(partID int) []int {
	var ids []int
	for _, p := range inv.products {
		if p.CountAssociated(partID) > 0 {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// bind copia el producto y enlaza cada pieza asociada con la pieza almacenada del mismo ID.
// Una pieza que ya no está en el inventario se conserva como copia (referencia colgante).
func (inv *Inventory) bind(product *entity.Product) *entity.Product {
	stored := product.Clone()
	parts := stored.AssociatedParts()
	for i, ap := range parts {
		if ki := inv.indexOfPart(ap.ID); ki >= 0 {
			parts[i] = inv.parts[ki]
		}
	}
	stored.SetAssociatedParts(parts)
	return stored
}

func (inv *Inventory) event(t inventory.EventType, entityID int) inventory.Event {
	ev := inventory.NewEvent(t, entityID)
	ev.PartCount = len(inv.parts)
	ev.ProductCount = len(inv.products)
	return ev
}

func (inv *Inventory) notify(ev inventory.Event) {
	inv.lmu.RLock()
	ls := make([]inventory.Listener, 0, len(inv.listeners))
	for _, l := range inv.listeners {
		ls = append(ls, l)
	}
	inv.lmu.RUnlock()
	for _, l := range ls {
		l(ev)
	}
}
