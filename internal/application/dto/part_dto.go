package dto

import "github.com/shopspring/decimal"

// PartForm entrada para crear o actualizar una pieza (formulario de pieza).
// Type: "in_house" exige machine_id numérico; "outsourced" exige company_name.
type PartForm struct {
	Type        FormValue `json:"type"`
	Name        FormValue `json:"name"`
	Price       FormValue `json:"price"`
	Stock       FormValue `json:"stock"`
	Min         FormValue `json:"min"`
	Max         FormValue `json:"max"`
	MachineID   FormValue `json:"machine_id"`
	CompanyName FormValue `json:"company_name"`
}

// PartResponse salida de una pieza.
type PartResponse struct {
	ID          int             `json:"id"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Min         int             `json:"min"`
	Max         int             `json:"max"`
	MachineID   *int            `json:"machine_id,omitempty"`
	CompanyName string          `json:"company_name,omitempty"`
}

// PartListResponse resultado de un listado o búsqueda de piezas.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Total int            `json:"total"`
}

// DeletePartResponse resultado de borrar una pieza. AffectedProducts son los productos
// que siguen referenciando la pieza borrada.
type DeletePartResponse struct {
	Deleted          bool  `json:"deleted"`
	AffectedProducts []int `json:"affected_products"`
}
