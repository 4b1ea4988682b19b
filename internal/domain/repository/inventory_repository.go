package repository

import (
	"github.com/jhoicas/invmanagement/internal/domain/entity"
)

// PartRepository define el puerto de almacenamiento de piezas (DIP).
// Los valores devueltos son copias: modificarlos no altera el inventario.
type PartRepository interface {
	InsertPart(part *entity.Part) *entity.Part
	LookupPartByID(id int) (*entity.Part, bool)
	LookupPartsByName(query string) []*entity.Part
	AllParts() []*entity.Part
	ReplacePart(id int, part *entity.Part) (*entity.Part, error)
	RemovePart(id int, strict bool) (affectedProducts []int, err error)
}

// ProductRepository define el puerto de almacenamiento de productos (DIP).
type ProductRepository interface {
	InsertProduct(product *entity.Product) *entity.Product
	LookupProductByID(id int) (*entity.Product, bool)
	LookupProductsByName(query string) []*entity.Product
	AllProducts() []*entity.Product
	ReplaceProduct(id int, product *entity.Product) (*entity.Product, error)
	ReplaceProductKeepingParts(id int, product *entity.Product) (*entity.Product, error)
	RemoveProduct(id int) error
	AssociatePart(productID, partID int) (*entity.Product, error)
	DissociatePart(productID, partID int) (*entity.Product, error)
}

// InventoryRepository agrupa ambos puertos; lo implementa el store en memoria.
type InventoryRepository interface {
	PartRepository
	ProductRepository
}
