package validation

import "github.com/jhoicas/invmanagement/internal/domain/entity"

// ProductFields formulario de producto en texto crudo.
type ProductFields struct {
	StockFields
}

// ValidateProduct valida el formulario de producto. En éxito el producto tiene ID 0 y ninguna pieza asociada.
func ValidateProduct(f ProductFields) (*entity.Product, error) {
	var issues []Issue
	if f.anyEmpty() {
		issues = append(issues, newIssue(CodeRequired))
	}
	stock, issues := checkStock(f.StockFields, issues)
	if err := result(issues); err != nil {
		return nil, err
	}
	return entity.NewProduct(0, f.Name, stock.price, stock.stock, stock.min, stock.max), nil
}
