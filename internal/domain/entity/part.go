package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PartKind identifica la variante de una pieza. Se fija al construirla.
type PartKind string

const (
	PartKindInHouse    PartKind = "in_house"   // fabricada en planta, lleva MachineID
	PartKindOutsourced PartKind = "outsourced" // comprada a un proveedor, lleva CompanyName
)

// Valid indica si k es una de las variantes conocidas.
func (k PartKind) Valid() bool {
	return k == PartKindInHouse || k == PartKindOutsourced
}

// Part representa una pieza del inventario.
// Los campos comunes se guardan una sola vez; MachineID solo aplica a in_house y CompanyName solo a outsourced.
// Una actualización de pieza no muta la existente: se reemplaza por un valor nuevo con el mismo ID.
type Part struct {
	ID          int
	Name        string
	Price       decimal.Decimal // no negativo
	Stock       int             // Min <= Stock <= Max
	Min         int
	Max         int
	kind        PartKind
	MachineID   int
	CompanyName string
}

// NewInHouse construye una pieza fabricada en planta.
func NewInHouse(id int, name string, price decimal.Decimal, stock, min, max, machineID int) *Part {
	return &Part{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Min:       min,
		Max:       max,
		kind:      PartKindInHouse,
		MachineID: machineID,
	}
}

// NewOutsourced construye una pieza de proveedor externo.
func NewOutsourced(id int, name string, price decimal.Decimal, stock, min, max int, companyName string) *Part {
	return &Part{
		ID:          id,
		Name:        name,
		Price:       price,
		Stock:       stock,
		Min:         min,
		Max:         max,
		kind:        PartKindOutsourced,
		CompanyName: companyName,
	}
}

// Kind devuelve la variante de la pieza.
func (p *Part) Kind() PartKind { return p.kind }

// IsInHouse / IsOutsourced atajos sobre Kind.
func (p *Part) IsInHouse() bool    { return p.kind == PartKindInHouse }
func (p *Part) IsOutsourced() bool { return p.kind == PartKindOutsourced }

// Source devuelve el dato propio de la variante como texto: máquina o proveedor.
func (p *Part) Source() string {
	switch p.kind {
	case PartKindInHouse:
		return strconv.Itoa(p.MachineID)
	case PartKindOutsourced:
		return p.CompanyName
	default:
		return ""
	}
}

// SameAs compara por ID, no por puntero.
func (p *Part) SameAs(other *Part) bool {
	if p == nil || other == nil {
		return false
	}
	return p.ID == other.ID
}

// Clone devuelve una copia independiente.
func (p *Part) Clone() *Part {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
