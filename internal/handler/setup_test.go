package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dadssi/Calendrier-Editoriel/internal/config"
	"github.com/Dadssi/Calendrier-Editoriel/internal/database"
	"github.com/Dadssi/Calendrier-Editoriel/internal/models"
	"github.com/Dadssi/Calendrier-Editoriel/internal/router"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret   = "test-secret"
	testEmail    = "a@b.com"
	testPassword = "secret"
)

// newTestServer wires the real router against an in-memory database and
// seeds the admin account.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// a single connection keeps every query on the same :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(&models.Admin{Email: testEmail, PasswordHash: string(hash)}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	cfg := &config.Config{
		JWT:  config.JWTConfig{Secret: testSecret, TTLSeconds: 3600},
		CORS: config.CORSConfig{AllowedOrigin: "http://localhost:8081"},
	}
	return router.SetupRouter(cfg, db), db
}

// doRequest performs one request against the router. A non-empty token is
// sent as a bearer credential; a non-nil body is marshalled as JSON.
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginToken signs in with the seeded admin and returns the session token.
func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp["token"] == "" {
		t.Fatal("login response has no token")
	}
	return resp["token"]
}

// decodeBody unmarshals a JSON object response.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

// contentPayload builds a valid create body; overrides with a nil value
// remove the key entirely.
func contentPayload(overrides map[string]any) map[string]any {
	body := map[string]any{
		"date":        "2024-03-01",
		"title":       "Launch teaser",
		"description": "Short teaser clip for the spring launch",
		"platforms":   []string{"linkedin", "tiktok"},
		"format":      "reel",
		"genre":       "educatif",
		"subGenre":    "tutoriels",
		"time":        "09:00",
		"status":      "todo",
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	return body
}
