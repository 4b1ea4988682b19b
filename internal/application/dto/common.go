package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error con la lista de problemas de validación.
type ValidationErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Errors  []ErrorResponse `json:"errors"`
}

// FormValue campo de formulario en texto crudo. Acepta en JSON tanto "12" como 12;
// null o ausente queda vacío. Objetos, arreglos y booleanos son un error de cuerpo.
// La conversión a número la hace la validación.
type FormValue string

// UnmarshalJSON conserva el texto tal como llegó.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*v = FormValue(n)
		return nil
	}
	return fmt.Errorf("valor de formulario inválido: %s", b)
}

// String devuelve el texto.
func (v FormValue) String() string { return string(v) }
