package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/invmanagement/internal/application/dto"
	"github.com/jhoicas/invmanagement/internal/domain"
	"github.com/jhoicas/invmanagement/internal/domain/entity"
	"github.com/jhoicas/invmanagement/internal/domain/inventory"
	"github.com/jhoicas/invmanagement/internal/domain/repository"
	"github.com/jhoicas/invmanagement/internal/domain/validation"
	"github.com/samber/lo"
)

// PartUseCase casos de uso del formulario de piezas y de la tabla de piezas.
type PartUseCase struct {
	repo         repository.PartRepository
	strictDelete bool
}

// NewPartUseCase construye el caso de uso. Con strictDelete no se borran piezas asociadas a productos.
func NewPartUseCase(repo repository.PartRepository, strictDelete bool) *PartUseCase {
	return &PartUseCase{repo: repo, strictDelete: strictDelete}
}

// Create valida el formulario, asigna un ID nuevo y agrega la pieza.
func (uc *PartUseCase) Create(in dto.PartForm) (*dto.PartResponse, error) {
	part, err := validation.ValidatePart(partFields(in))
	if err != nil {
		return nil, err
	}
	return toPartResponse(uc.repo.InsertPart(part)), nil
}

// GetByID obtiene una pieza por ID.
func (uc *PartUseCase) GetByID(id int) (*dto.PartResponse, error) {
	part, ok := uc.repo.LookupPartByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPartNotFound, id)
	}
	return toPartResponse(part), nil
}

// Update valida el formulario y reemplaza la pieza conservando su ID.
// Los productos que la tenían asociada pasan a referenciar la nueva versión.
// El tipo puede cambiar: la pieza se reconstruye como la otra variante.
func (uc *PartUseCase) Update(id int, in dto.PartForm) (*dto.PartResponse, error) {
	part, err := validation.ValidatePart(partFields(in))
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.ReplacePart(id, part)
	if err != nil {
		return nil, err
	}
	return toPartResponse(updated), nil
}

// Delete borra la pieza. Devuelve los productos que siguen referenciándola.
func (uc *PartUseCase) Delete(id int) (*dto.DeletePartResponse, error) {
	affected, err := uc.repo.RemovePart(id, uc.strictDelete)
	if err != nil {
		return nil, err
	}
	if affected == nil {
		affected = []int{}
	}
	return &dto.DeletePartResponse{Deleted: true, AffectedProducts: affected}, nil
}

// List todas las piezas en orden de inserción.
func (uc *PartUseCase) List() *dto.PartListResponse {
	return toPartList(uc.repo.AllParts())
}

// Search filtro de la tabla de piezas: consulta vacía muestra todo; si no, coincide una pieza
// cuyo ID es la consulta (cuando es numérica) o cuyo nombre empieza con ella.
func (uc *PartUseCase) Search(query string) *dto.PartListResponse {
	query = strings.TrimSpace(query)
	parts := uc.repo.AllParts()
	if query == "" {
		return toPartList(parts)
	}
	id, isID := inventory.ParseIDQuery(query)
	return toPartList(lo.Filter(parts, func(p *entity.Part, _ int) bool {
		return (isID && p.ID == id) || inventory.MatchesPrefix(p.Name, query)
	}))
}

func partFields(in dto.PartForm) validation.PartFields {
	return validation.PartFields{
		StockFields: validation.StockFields{
			Name:  in.Name.String(),
			Price: in.Price.String(),
			Stock: in.Stock.String(),
			Min:   in.Min.String(),
			Max:   in.Max.String(),
		},
		Kind:        in.Type.String(),
		MachineID:   in.MachineID.String(),
		CompanyName: in.CompanyName.String(),
	}
}

func toPartList(parts []*entity.Part) *dto.PartListResponse {
	items := lo.Map(parts, func(p *entity.Part, _ int) dto.PartResponse {
		return *toPartResponse(p)
	})
	return &dto.PartListResponse{Items: items, Total: len(items)}
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	out := &dto.PartResponse{
		ID:    p.ID,
		Type:  string(p.Kind()),
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
		Min:   p.Min,
		Max:   p.Max,
	}
	switch p.Kind() {
	case entity.PartKindInHouse:
		machineID := p.MachineID
		out.MachineID = &machineID
	case entity.PartKindOutsourced:
		out.CompanyName = p.CompanyName
	}
	return out
}
