package entity

import (
	"github.com/shopspring/decimal"
)

// Product representa un producto vendible compuesto por cero o más piezas.
// associatedParts guarda referencias a piezas del inventario, no copias propias;
// se permiten duplicados y el orden es el de inserción.
type Product struct {
	ID              int
	Name            string
	Price           decimal.Decimal
	Stock           int
	Min             int
	Max             int
	associatedParts []*Part
}

// NewProduct construye un producto sin piezas asociadas.
func NewProduct(id int, name string, price decimal.Decimal, stock, min, max int) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
		Min:   min,
		Max:   max,
	}
}

// AddAssociatedPart agrega una referencia al final de la lista.
func (p *Product) AddAssociatedPart(part *Part) {
	p.associatedParts = append(p.associatedParts, part)
}

// DeleteAssociatedPart quita la primera ocurrencia de la pieza con ese ID.
// Devuelve false si no estaba asociada.
func (p *Product) DeleteAssociatedPart(partID int) bool {
	for i, ap := range p.associatedParts {
		if ap.ID == partID {
			p.associatedParts = append(p.associatedParts[:i], p.associatedParts[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAssociatedPart cambia, en su misma posición, cada ocurrencia de la referencia old por part.
// Solo aplica si ambas son la misma pieza (mismo ID); una copia colgante con ese ID no se toca.
// Devuelve cuántas ocurrencias se reemplazaron.
func (p *Product) ReplaceAssociatedPart(old, part *Part) int {
	if !old.SameAs(part) {
		return 0
	}
	n := 0
	for i, ap := range p.associatedParts {
		if ap == old {
			p.associatedParts[i] = part
			n++
		}
	}
	return n
}

// CountAssociated cuenta las ocurrencias de una pieza en la lista.
func (p *Product) CountAssociated(partID int) int {
	n := 0
	for _, ap := range p.associatedParts {
		if ap.ID == partID {
			n++
		}
	}
	return n
}

// HasAssociatedParts indica si la lista no está vacía.
func (p *Product) HasAssociatedParts() bool {
	return len(p.associatedParts) > 0
}

// AssociatedParts devuelve una copia de la lista (las referencias son las mismas).
func (p *Product) AssociatedParts() []*Part {
	out := make([]*Part, len(p.associatedParts))
	copy(out, p.associatedParts)
	return out
}

// SetAssociatedParts reemplaza la lista completa.
func (p *Product) SetAssociatedParts(parts []*Part) {
	p.associatedParts = make([]*Part, len(parts))
	copy(p.associatedParts, parts)
}

// Clone devuelve una copia profunda: el producto y cada pieza asociada.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.associatedParts = make([]*Part, len(p.associatedParts))
	for i, ap := range p.associatedParts {
		c.associatedParts[i] = ap.Clone()
	}
	return &c
}
