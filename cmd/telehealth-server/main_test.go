package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/telehealth/telehealth/internal/config"
	"github.com/telehealth/telehealth/internal/platform/db"
)

// nopQuerier satisfies db.Querier for route wiring tests; no test here
// reaches the store.
type nopQuerier struct{}

func (nopQuerier) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (nopQuerier) QueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }

func (nopQuerier) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		Env:         "test",
		LogLevel:    "debug",
		DBMaxConns:  4,
		CORSOrigins: []string{"http://localhost:3000"},
		BodyLimit:   "1K",
	}
}

func testServer() http.Handler {
	return newServer(testConfig(), zerolog.Nop(), nopQuerier{}, okPinger{}, func() *db.PoolStats {
		return &db.PoolStats{TotalConns: 1}
	})
}

func TestNewServer_RegistersRoutes(t *testing.T) {
	e := newServer(testConfig(), zerolog.Nop(), nopQuerier{}, okPinger{}, nil)

	want := []string{
		"GET /health",
		"GET /health/db",
		"GET /api/v1/pacientes",
		"GET /api/v1/pacientes/cpf/:cpf",
		"POST /api/v1/medicos",
		"GET /api/v1/exames/resultados",
		"GET /api/v1/historicoconsulta/criticos",
		"GET /api/v1/consultaonline/medico/:id",
		"PUT /api/v1/consultaonline/:id",
		"DELETE /api/v1/consultaonline/:id",
	}
	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}

func TestNewServer_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "ok" || body["version"] != version {
		t.Errorf("unexpected body %v", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header")
	}
}

func TestNewServer_ValidationErrorBeforeStore(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultaonline",
		strings.NewReader(`{"status":"Agendada","link":"http://x","id_paciente":5,"id_medico":1}`))
	req.Header.Set("Content-Type", "application/json")
	testServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "dataConsulta is required") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestNewServer_BodyLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pacientes", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set("Content-Type", "application/json")
	testServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
}

func TestNewServer_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message"`) {
		t.Errorf("expected JSON error body, got %s", rec.Body.String())
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: "production", LogLevel: "warn"}
	logger := newLogger(cfg, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected JSON output outside development, got %q", out)
	}
}

func TestPrintStatuses(t *testing.T) {
	applied := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var buf bytes.Buffer
	printStatuses(&buf, []db.MigrationStatus{
		{Version: 1, Name: "001_entities.sql", Applied: true, AppliedAt: &applied},
		{Version: 2, Name: "002_online_consultations.sql"},
	})

	out := buf.String()
	if !strings.Contains(out, "applied    2024-01-02 03:04:05") {
		t.Errorf("expected applied row, got:\n%s", out)
	}
	if !strings.Contains(out, "002_online_consultations.sql") || !strings.Contains(out, "pending") {
		t.Errorf("expected pending row, got:\n%s", out)
	}
}
