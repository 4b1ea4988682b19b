// Package validation contiene las reglas de negocio de los formularios de piezas y productos.
// Las funciones son puras: reciben texto crudo y devuelven la entidad (con ID 0) o la lista
// ordenada de problemas encontrados. Los errores se acumulan para mostrarlos todos a la vez.
package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jhoicas/invmanagement/internal/domain"
	"github.com/shopspring/decimal"
)

// Códigos estables de cada regla.
const (
	CodeRequired            = "REQUIRED"
	CodeNotNumeric          = "NOT_NUMERIC"
	CodeMinGreaterThanMax   = "MIN_GREATER_THAN_MAX"
	CodeStockGreaterThanMax = "STOCK_GREATER_THAN_MAX"
	CodeStockLessThanMin    = "STOCK_LESS_THAN_MIN"
	CodeNegativePrice       = "NEGATIVE_PRICE"
	CodeInvalidPartType     = "INVALID_PART_TYPE"
	CodeMachineIDNotNumeric = "MACHINE_ID_NOT_NUMERIC"
)

var messages = map[string]string{
	CodeRequired:            "Todos los campos son obligatorios.",
	CodeNotNumeric:          "Los campos de inventario (stock, min, max) y el precio deben ser numéricos.",
	CodeMinGreaterThanMax:   "Min no puede ser mayor que max.",
	CodeStockGreaterThanMax: "El stock no puede ser mayor que max.",
	CodeStockLessThanMin:    "El stock no puede ser menor que min.",
	CodeNegativePrice:       "El precio no puede ser negativo.",
	CodeInvalidPartType:     "El tipo de pieza debe ser in_house u outsourced.",
	CodeMachineIDNotNumeric: "El ID de máquina debe ser numérico.",
}

// Issue un problema de validación.
type Issue struct {
	Code    string
	Message string
}

func newIssue(code string) Issue {
	return Issue{Code: code, Message: messages[code]}
}

// Error agrupa los problemas de una validación en el orden en que se detectaron.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		msgs[i] = is.Message
	}
	return strings.Join(msgs, "\n")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// Has indica si alguno de los problemas tiene ese código.
func (e *Error) Has(code string) bool {
	for _, is := range e.Issues {
		if is.Code == code {
			return true
		}
	}
	return false
}

// Codes devuelve los códigos en orden.
func (e *Error) Codes() []string {
	out := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		out[i] = is.Code
	}
	return out
}

// AsError extrae *Error de una cadena de errores.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// StockFields campos comunes a piezas y productos, tal como llegan del formulario.
type StockFields struct {
	Name  string
	Price string
	Stock string
	Min   string
	Max   string
}

func (f StockFields) anyEmpty() bool {
	return f.Name == "" || f.Price == "" || f.Stock == "" || f.Min == "" || f.Max == ""
}

// parsedStock resultado de convertir StockFields.
type parsedStock struct {
	price           decimal.Decimal
	stock, min, max int
}

// checkStock aplica las reglas numéricas y de rango. Si algún campo no se puede convertir
// se reporta un solo problema y se omiten las reglas de rango.
func checkStock(f StockFields, issues []Issue) (parsedStock, []Issue) {
	var out parsedStock
	var errStock, errMin, errMax, errPrice error
	out.stock, errStock = strconv.Atoi(f.Stock)
	out.min, errMin = strconv.Atoi(f.Min)
	out.max, errMax = strconv.Atoi(f.Max)
	out.price, errPrice = decimal.NewFromString(f.Price)
	if errStock != nil || errMin != nil || errMax != nil || errPrice != nil {
		return out, append(issues, newIssue(CodeNotNumeric))
	}

	// Solo una regla de rango por llamada, en este orden.
	switch {
	case out.min > out.max:
		issues = append(issues, newIssue(CodeMinGreaterThanMax))
	case out.stock > out.max:
		issues = append(issues, newIssue(CodeStockGreaterThanMax))
	case out.stock < out.min:
		issues = append(issues, newIssue(CodeStockLessThanMin))
	}
	if out.price.IsNegative() {
		issues = append(issues, newIssue(CodeNegativePrice))
	}
	return out, issues
}

func result(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &Error{Issues: issues}
}
