package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invmanagement/internal/domain/entity"
)

func part(id int, name string) *entity.Part {
	return entity.NewInHouse(id, name, decimal.NewFromInt(2), 5, 1, 10, 7)
}

func names(parts []*entity.Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Name
	}
	return out
}

func TestPart_VarianteFijaEnConstructor(t *testing.T) {
	in := entity.NewInHouse(1, "Perno", decimal.NewFromInt(1), 1, 1, 1, 42)
	out := entity.NewOutsourced(2, "Tuerca", decimal.NewFromInt(1), 1, 1, 1, "Acme")

	assert.True(t, in.IsInHouse())
	assert.Equal(t, entity.PartKindInHouse, in.Kind())
	assert.Equal(t, "42", in.Source())

	assert.True(t, out.IsOutsourced())
	assert.Equal(t, entity.PartKindOutsourced, out.Kind())
	assert.Equal(t, "Acme", out.Source())
}

func TestPart_SameAsComparaPorID(t *testing.T) {
	a := part(1, "A")
	a2 := part(1, "A editada")
	b := part(2, "B")

	assert.True(t, a.SameAs(a2))
	assert.False(t, a.SameAs(b))
	assert.False(t, a.SameAs(nil))
}

func TestProduct_AsociacionesConDuplicadosYOrden(t *testing.T) {
	p := entity.NewProduct(1, "Bici", decimal.NewFromInt(100), 1, 0, 5)
	a, b := part(1, "A"), part(2, "B")

	assert.False(t, p.HasAssociatedParts())
	p.AddAssociatedPart(a)
	p.AddAssociatedPart(b)
	p.AddAssociatedPart(a)

	assert.Equal(t, []string{"A", "B", "A"}, names(p.AssociatedParts()))
	assert.Equal(t, 2, p.CountAssociated(1))

	// Quita solo la primera ocurrencia.
	require.True(t, p.DeleteAssociatedPart(1))
	assert.Equal(t, []string{"B", "A"}, names(p.AssociatedParts()))
	assert.False(t, p.DeleteAssociatedPart(99))
}

func TestProduct_ReplaceAssociatedPartConservaPosicion(t *testing.T) {
	p := entity.NewProduct(1, "Bici", decimal.NewFromInt(100), 1, 0, 5)
	a, b := part(1, "A"), part(2, "B")
	p.SetAssociatedParts([]*entity.Part{a, b, a})

	n := p.ReplaceAssociatedPart(a, part(1, "A'"))

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"A'", "B", "A'"}, names(p.AssociatedParts()))
}

func TestProduct_ReplaceAssociatedPartIgnoraCopiasConMismoID(t *testing.T) {
	p := entity.NewProduct(1, "Bici", decimal.NewFromInt(100), 1, 0, 5)
	vieja, nueva := part(1, "Vieja"), part(1, "Nueva")
	p.SetAssociatedParts([]*entity.Part{vieja})

	assert.Equal(t, 0, p.ReplaceAssociatedPart(nueva, part(1, "Otra")), "la copia colgante no se reenlaza")
	assert.Equal(t, 0, p.ReplaceAssociatedPart(vieja, part(2, "Distinta")), "ID distinto")
	assert.Equal(t, []string{"Vieja"}, names(p.AssociatedParts()))
}

func TestProduct_CloneEsIndependiente(t *testing.T) {
	p := entity.NewProduct(1, "Bici", decimal.NewFromInt(100), 1, 0, 5)
	p.AddAssociatedPart(part(1, "A"))

	c := p.Clone()
	c.Name = "Otra"
	c.AssociatedParts()[0].Name = "cambiada"
	c.AddAssociatedPart(part(2, "B"))

	assert.Equal(t, "Bici", p.Name)
	assert.Equal(t, []string{"A"}, names(p.AssociatedParts()))
}
