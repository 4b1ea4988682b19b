package dto

import "github.com/shopspring/decimal"

// ProductForm entrada para crear o actualizar un producto (formulario de producto).
// AssociatedPartIDs nil en una actualización conserva las piezas actuales; una lista (aunque vacía) las reemplaza.
type ProductForm struct {
	Name              FormValue `json:"name"`
	Price             FormValue `json:"price"`
	Stock             FormValue `json:"stock"`
	Min               FormValue `json:"min"`
	Max               FormValue `json:"max"`
	AssociatedPartIDs []int     `json:"associated_part_ids"`
}

// AssociatePartRequest body para POST /api/products/:id/parts.
type AssociatePartRequest struct {
	PartID *int `json:"part_id"`
}

// ProductResponse salida de un producto con sus piezas asociadas en orden.
type ProductResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	Min             int             `json:"min"`
	Max             int             `json:"max"`
	AssociatedParts []PartResponse  `json:"associated_parts"`
}

// ProductListResponse resultado de un listado o búsqueda de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
