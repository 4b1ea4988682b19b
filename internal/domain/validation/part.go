package validation

import (
	"strconv"
	"strings"

	"github.com/jhoicas/invmanagement/internal/domain/entity"
)

// PartFields formulario de pieza en texto crudo. Kind decide cuál de MachineID/CompanyName es obligatorio.
type PartFields struct {
	StockFields
	Kind        string
	MachineID   string
	CompanyName string
}

// ParseKind normaliza el tipo recibido ("in_house", "In-House", "outsourced"...).
func ParseKind(s string) (entity.PartKind, bool) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.ReplaceAll(k, "-", "_")
	if kind := entity.PartKind(k); kind.Valid() {
		return kind, true
	}
	return "", false
}

// conditional devuelve el campo propio de la variante; vacío si Kind no es válido.
func (f PartFields) conditional(kind entity.PartKind) string {
	if kind == entity.PartKindInHouse {
		return f.MachineID
	}
	return f.CompanyName
}

// ValidatePart valida el formulario de pieza. En éxito la pieza tiene ID 0: el ID se asigna al agregarla.
func ValidatePart(f PartFields) (*entity.Part, error) {
	var issues []Issue

	kind, kindOK := ParseKind(f.Kind)
	if f.anyEmpty() || (kindOK && f.conditional(kind) == "") {
		issues = append(issues, newIssue(CodeRequired))
	}

	stock, issues := checkStock(f.StockFields, issues)

	var machineID int
	if !kindOK {
		issues = append(issues, newIssue(CodeInvalidPartType))
	} else if kind == entity.PartKindInHouse {
		id, err := strconv.Atoi(f.MachineID)
		if err != nil {
			issues = append(issues, newIssue(CodeMachineIDNotNumeric))
		}
		machineID = id
	}

	if err := result(issues); err != nil {
		return nil, err
	}
	if kind == entity.PartKindInHouse {
		return entity.NewInHouse(0, f.Name, stock.price, stock.stock, stock.min, stock.max, machineID), nil
	}
	return entity.NewOutsourced(0, f.Name, stock.price, stock.stock, stock.min, stock.max, f.CompanyName), nil
}
