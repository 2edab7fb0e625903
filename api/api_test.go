package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/awtad/website/api"
	migrations "github.com/awtad/website/db"
	"github.com/awtad/website/internal/config"
	dbpkg "github.com/awtad/website/internal/db"
	"github.com/awtad/website/internal/models"
	sqlite "github.com/awtad/website/internal/repository/sqlite"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
		RateLimit:     config.RateConfig{Requests: 100, Window: time.Minute},
	}
}

// setupServer starts the full router over a fresh in-memory database and
// returns a repo handle for seeding fixtures.
func setupServer(t *testing.T, cfg *config.Config) (*httptest.Server, *sqlite.SQLiteRepo, func()) {
	t.Helper()
	ctx := context.Background()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	d, err := dbpkg.New(ctx, fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := dbpkg.Migrate(ctx, d, migrations.Migrations, migrations.SeedFiles); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}

	repo := sqlite.New(d, nil)
	srv := httptest.NewServer(api.SetupRoutes(cfg, "test", "now", d))
	return srv, repo, func() { srv.Close(); d.Close() }
}

// seedAdmin inserts an admin and returns a signed-in token.
func seedAdmin(t *testing.T, srv *httptest.Server, repo *sqlite.SQLiteRepo, email, password string) string {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if _, err := repo.CreateAdmin(ctx, &models.Admin{Name: "Admin", Email: email, PasswordHash: string(hash)}); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	res, err := http.Post(srv.URL+"/v1/auth/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("signin request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("signin expected 200, got %d", res.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode signin response: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("empty token")
	}
	return out.Token
}

func doJSON(t *testing.T, method, url, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return res
}

func decodeBody[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var v T
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthAndVersion(t *testing.T) {
	srv, _, cleanup := setupServer(t, testConfig())
	defer cleanup()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health expected 200, got %d", res.StatusCode)
	}

	res, err = http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	defer res.Body.Close()
	var v map[string]string
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatalf("decode version: %v", err)
	}
	if v["version"] != "test" {
		t.Fatalf("unexpected version payload: %v", v)
	}
}

func TestErrorShape(t *testing.T) {
	srv, _, cleanup := setupServer(t, testConfig())
	defer cleanup()

	res, err := http.Get(srv.URL + "/v1/projects/no-such-slug")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	body := decodeBody[map[string]string](t, res)
	if body["error"] == "" {
		t.Fatalf("non-2xx response missing error field: %v", body)
	}
}
