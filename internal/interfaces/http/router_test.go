package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invmanagement/internal/application/usecase"
	"github.com/jhoicas/invmanagement/internal/infrastructure/memory"
	"github.com/jhoicas/invmanagement/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/invmanagement/internal/interfaces/http"
	"github.com/jhoicas/invmanagement/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	partBody    = `{"type":"in_house","name":"Perno","price":"1.50","stock":"5","min":"1","max":"10","machine_id":"7"}`
	productBody = `{"name":"Kit","price":"20","stock":"2","min":"1","max":"5"}`
)

// buildTestApp construye la aplicación completa sobre un inventario vacío.
func buildTestApp(t *testing.T, strict bool) *fiber.App {
	t.Helper()
	inv := memory.NewInventory(memory.Config{PartIDSeed: 1, ProductIDSeed: 1})
	m := metrics.New(inv.Counts)
	inv.Subscribe(m.InventoryListener())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PartUC:    usecase.NewPartUseCase(inv, strict),
		ProductUC: usecase.NewProductUseCase(inv, inv),
		Logger:    logger.Nop(),
		Metrics:   m,
	})
	return app
}

// do ejecuta la petición y decodifica el cuerpo JSON (si lo hay) en un mapa.
func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	}
	return resp.StatusCode, out
}

func errorCodes(body map[string]any) []string {
	list, _ := body["errors"].([]any)
	out := make([]string, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m["code"].(string))
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Piezas
// ──────────────────────────────────────────────────────────────────────────────

func TestParts_CreateYGet(t *testing.T) {
	app := buildTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/parts", partBody)
	require.Equal(t, fiber.StatusCreated, status)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "in_house", body["type"])
	assert.EqualValues(t, 7, body["machine_id"])
	assert.NotContains(t, body, "company_name")

	status, body = do(t, app, http.MethodGet, "/api/parts/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Perno", body["name"])
}

func TestParts_CreateAceptaNumerosJSON(t *testing.T) {
	app := buildTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/parts",
		`{"type":"outsourced","name":"Tuerca","price":0.75,"stock":3,"min":1,"max":9,"company_name":"Acme"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Acme", body["company_name"])
	assert.NotContains(t, body, "machine_id")
}

func TestParts_CreateValidacion(t *testing.T) {
	app := buildTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/parts",
		`{"type":"in_house","name":"","price":"1","stock":"15","min":"1","max":"10","machine_id":"M-1"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, []string{"REQUIRED", "STOCK_GREATER_THAN_MAX", "MACHINE_ID_NOT_NUMERIC"}, errorCodes(body))
}

func TestParts_CuerpoEIDInvalidos(t *testing.T) {
	app := buildTestApp(t, false)

	for _, raw := range []string{`{"name":`, `{"type":"outsourced","name":{"x":[1,2]},"price":"1","stock":"1","min":"1","max":"1","company_name":true}`} {
		status, body := do(t, app, http.MethodPost, "/api/parts", raw)
		assert.Equal(t, fiber.StatusBadRequest, status, raw)
		assert.Equal(t, "INVALID_BODY", body["code"], raw)
	}
	_, body := do(t, app, http.MethodGet, "/api/parts", "")
	assert.EqualValues(t, 0, body["total"])

	var status int
	for _, target := range []string{"/api/parts/abc", "/api/parts/0", "/api/parts/-3"} {
		status, body = do(t, app, http.MethodGet, target, "")
		assert.Equal(t, fiber.StatusBadRequest, status, target)
		assert.Equal(t, "INVALID_ID", body["code"], target)
	}

	status, body = do(t, app, http.MethodGet, "/api/parts/9", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "PART_NOT_FOUND", body["code"])
}

func TestParts_Search(t *testing.T) {
	app := buildTestApp(t, false)
	for _, name := range []string{"Widget", "Sprocket", "Widget Pro"} {
		status, _ := do(t, app, http.MethodPost, "/api/parts", strings.Replace(partBody, "Perno", name, 1))
		require.Equal(t, fiber.StatusCreated, status)
	}

	_, body := do(t, app, http.MethodGet, "/api/parts?q=wid%20get", "")
	assert.EqualValues(t, 2, body["total"])

	_, body = do(t, app, http.MethodGet, "/api/parts?q=2", "")
	require.EqualValues(t, 1, body["total"])
	item := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Sprocket", item["name"])

	_, body = do(t, app, http.MethodGet, "/api/parts", "")
	assert.EqualValues(t, 3, body["total"])
}

func TestParts_UpdateYDelete(t *testing.T) {
	app := buildTestApp(t, false)
	do(t, app, http.MethodPost, "/api/parts", partBody)
	do(t, app, http.MethodPost, "/api/products", `{"name":"Kit","price":"20","stock":"2","min":"1","max":"5","associated_part_ids":[1]}`)

	status, body := do(t, app, http.MethodPut, "/api/parts/1", strings.Replace(partBody, "Perno", "Perno M8", 1))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Perno M8", body["name"])

	_, body = do(t, app, http.MethodGet, "/api/products/1", "")
	parts := body["associated_parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "Perno M8", parts[0].(map[string]any)["name"])

	status, body = do(t, app, http.MethodDelete, "/api/parts/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["deleted"])
	assert.Equal(t, []any{float64(1)}, body["affected_products"])
}

func TestParts_DeleteEstricto(t *testing.T) {
	app := buildTestApp(t, true)
	do(t, app, http.MethodPost, "/api/parts", partBody)
	do(t, app, http.MethodPost, "/api/products", `{"name":"Kit","price":"20","stock":"2","min":"1","max":"5","associated_part_ids":[1]}`)

	status, body := do(t, app, http.MethodDelete, "/api/parts/1", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "PART_IN_USE", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_BorradoConGuarda(t *testing.T) {
	app := buildTestApp(t, false)
	do(t, app, http.MethodPost, "/api/parts", partBody)
	status, _ := do(t, app, http.MethodPost, "/api/products", productBody)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := do(t, app, http.MethodPost, "/api/products/1/parts", `{"part_id":1}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["associated_parts"], 1)

	status, body = do(t, app, http.MethodDelete, "/api/products/1", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "PRODUCT_HAS_PARTS", body["code"])

	status, body = do(t, app, http.MethodDelete, "/api/products/1/parts/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["associated_parts"])

	status, _ = do(t, app, http.MethodDelete, "/api/products/1", "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body = do(t, app, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body["code"])

	status, _ = do(t, app, http.MethodGet, "/api/parts/1", "")
	assert.Equal(t, fiber.StatusOK, status, "la pieza sigue en el inventario")
}

func TestProducts_AsociarSinPieza(t *testing.T) {
	app := buildTestApp(t, false)
	do(t, app, http.MethodPost, "/api/products", productBody)

	status, body := do(t, app, http.MethodPost, "/api/products/1/parts", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "MISSING_PART", body["code"])

	status, body = do(t, app, http.MethodPost, "/api/products/1/parts", `{"part_id":5}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "PART_NOT_FOUND", body["code"])
}

func TestProducts_CreateConPiezaInexistente(t *testing.T) {
	app := buildTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/products",
		`{"name":"Kit","price":"20","stock":"2","min":"1","max":"5","associated_part_ids":[3]}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "PART_NOT_FOUND", body["code"])
}

func TestProducts_UpdateValidacion(t *testing.T) {
	app := buildTestApp(t, false)
	do(t, app, http.MethodPost, "/api/products", productBody)

	status, body := do(t, app, http.MethodPut, "/api/products/1",
		`{"name":"Kit","price":"20","stock":"2","min":"9","max":"5"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []string{"MIN_GREATER_THAN_MAX"}, errorCodes(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestMetrics_Expone(t *testing.T) {
	app := buildTestApp(t, false)
	do(t, app, http.MethodPost, "/api/parts", partBody)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	text := string(raw)
	assert.Contains(t, text, "invmanagement_inventory_parts 1")
	assert.Contains(t, text, "invmanagement_inventory_mutations_total")
	assert.Contains(t, text, "invmanagement_http_requests_total")
}
