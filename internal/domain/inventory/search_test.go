package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invmanagement/internal/domain/inventory"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Widget":       "widget",
		"wid get":      "widget",
		"  W I D\tGET": "widget",
		"Tornillo\n12": "tornillo12",
		"":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, inventory.NormalizeName(in), "entrada %q", in)
	}
}

func TestMatchesPrefix(t *testing.T) {
	assert.True(t, inventory.MatchesPrefix("Widget", "Wid"))
	assert.True(t, inventory.MatchesPrefix("wid get", "Wid"))
	assert.True(t, inventory.MatchesPrefix("Widget", "WIDGET"))
	assert.True(t, inventory.MatchesPrefix("Widget", "wi dg"))
	assert.False(t, inventory.MatchesPrefix("Sprocket", "Wid"))
	assert.False(t, inventory.MatchesPrefix("Wid", "Widget"))
}

func TestMatchesPrefix_ConsultaVaciaNoCoincide(t *testing.T) {
	assert.False(t, inventory.MatchesPrefix("Widget", ""))
	assert.False(t, inventory.MatchesPrefix("Widget", "   "))
}

func TestParseIDQuery(t *testing.T) {
	id, ok := inventory.ParseIDQuery("42")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	for _, q := range []string{"", "4a", "-1", "+1", "1.5", " 1", "99999999999999999999999"} {
		_, ok := inventory.ParseIDQuery(q)
		assert.False(t, ok, "consulta %q", q)
	}
}
