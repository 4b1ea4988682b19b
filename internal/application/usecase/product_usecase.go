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

// ProductUseCase casos de uso del formulario de productos y de la tabla de productos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	parts repository.PartRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, parts repository.PartRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, parts: parts}
}

// Create valida el formulario, resuelve las piezas asociadas y agrega el producto con un ID nuevo.
func (uc *ProductUseCase) Create(in dto.ProductForm) (*dto.ProductResponse, error) {
	product, err := validation.ValidateProduct(productFields(in))
	if err != nil {
		return nil, err
	}
	parts, err := uc.resolveParts(in.AssociatedPartIDs)
	if err != nil {
		return nil, err
	}
	product.SetAssociatedParts(parts)
	return toProductResponse(uc.repo.InsertProduct(product)), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, ok := uc.repo.LookupProductByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	return toProductResponse(product), nil
}

// Update valida el formulario y reemplaza el producto conservando su ID.
// Las piezas asociadas se reemplazan solo si el formulario trae associated_part_ids; si no, el store
// conserva las que tenga en el momento del reemplazo.
func (uc *ProductUseCase) Update(id int, in dto.ProductForm) (*dto.ProductResponse, error) {
	product, err := validation.ValidateProduct(productFields(in))
	if err != nil {
		return nil, err
	}
	if in.AssociatedPartIDs == nil {
		updated, err := uc.repo.ReplaceProductKeepingParts(id, product)
		if err != nil {
			return nil, err
		}
		return toProductResponse(updated), nil
	}
	parts, err := uc.resolveParts(in.AssociatedPartIDs)
	if err != nil {
		return nil, err
	}
	product.SetAssociatedParts(parts)
	updated, err := uc.repo.ReplaceProduct(id, product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete borra el producto; falla con domain.ErrProductHasParts si tiene piezas asociadas.
func (uc *ProductUseCase) Delete(id int) error {
	return uc.repo.RemoveProduct(id)
}

// AddPart asocia una pieza del inventario al producto (se admiten repetidas).
func (uc *ProductUseCase) AddPart(productID, partID int) (*dto.ProductResponse, error) {
	product, err := uc.repo.AssociatePart(productID, partID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// RemovePart quita una ocurrencia de la pieza del producto. La pieza sigue en el inventario.
func (uc *ProductUseCase) RemovePart(productID, partID int) (*dto.ProductResponse, error) {
	product, err := uc.repo.DissociatePart(productID, partID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List todos los productos en orden de inserción.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	return toProductList(uc.repo.AllProducts())
}

// Search filtro de la tabla de productos, con las mismas reglas que el de piezas.
func (uc *ProductUseCase) Search(query string) *dto.ProductListResponse {
	query = strings.TrimSpace(query)
	products := uc.repo.AllProducts()
	if query == "" {
		return toProductList(products)
	}
	id, isID := inventory.ParseIDQuery(query)
	return toProductList(lo.Filter(products, func(p *entity.Product, _ int) bool {
		return (isID && p.ID == id) || inventory.MatchesPrefix(p.Name, query)
	}))
}

func (uc *ProductUseCase) resolveParts(ids []int) ([]*entity.Part, error) {
	parts := make([]*entity.Part, 0, len(ids))
	for _, id := range ids {
		part, ok := uc.parts.LookupPartByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: id %d", domain.ErrPartNotFound, id)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func productFields(in dto.ProductForm) validation.ProductFields {
	return validation.ProductFields{
		StockFields: validation.StockFields{
			Name:  in.Name.String(),
			Price: in.Price.String(),
			Stock: in.Stock.String(),
			Min:   in.Min.String(),
			Max:   in.Max.String(),
		},
	}
}

func toProductList(products []*entity.Product) *dto.ProductListResponse {
	items := lo.Map(products, func(p *entity.Product, _ int) dto.ProductResponse {
		return *toProductResponse(p)
	})
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	parts := lo.Map(p.AssociatedParts(), func(ap *entity.Part, _ int) dto.PartResponse {
		return *toPartResponse(ap)
	})
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Stock:           p.Stock,
		Min:             p.Min,
		Max:             p.Max,
		AssociatedParts: parts,
	}
}
