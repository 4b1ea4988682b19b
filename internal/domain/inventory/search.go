package inventory

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// NormalizeName quita todo espacio en blanco y pliega mayúsculas/minúsculas.
// "Wid Get" y "widget" normalizan igual.
func NormalizeName(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	return cases.Fold().String(stripped)
}

// MatchesPrefix indica si el nombre normalizado empieza con la consulta normalizada.
// Una consulta vacía (o solo espacios) no coincide con nada.
func MatchesPrefix(name, query string) bool {
	q := NormalizeName(query)
	if q == "" {
		return false
	}
	return strings.HasPrefix(NormalizeName(name), q)
}

// ParseIDQuery interpreta la consulta como ID si son solo dígitos ASCII.
func ParseIDQuery(query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(query)
	if err != nil {
		return 0, false
	}
	return id, true
}
