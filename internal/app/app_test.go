package app

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"tasmeem_backend/internal/config"
	"tasmeem_backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 24
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	config.AppConfig = cfg

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedCatalog(db))

	return SetupRouter(cfg, db, nil)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine, payload map[string]any) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    payload["email"],
		"password": payload["password"],
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody(t, w)["token"].(string)
}

func catalogID(t *testing.T, router *gin.Engine, path, listKey, name string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries := decodeBody(t, w)[listKey].([]any)
	for _, entry := range entries {
		m := entry.(map[string]any)
		if m["name"] == name {
			return m["id"].(string)
		}
	}
	t.Fatalf("%s not found in %s", name, path)
	return ""
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	router := setupTestServer(t)

	photoshopID := catalogID(t, router, "/api/v1/software", "software", "Adobe Photoshop")
	logoServiceID := catalogID(t, router, "/api/v1/services", "services", "Logo Design")

	clientToken := registerAndLogin(t, router, map[string]any{
		"email":      "client@example.com",
		"password":   "secret123",
		"user_type":  "client",
		"first_name": "Sara",
		"last_name":  "Ahmed",
	})
	designerToken := registerAndLogin(t, router, map[string]any{
		"email":        "designer@example.com",
		"password":     "secret123",
		"user_type":    "designer",
		"username":     "pixel_nour",
		"software_ids": []string{photoshopID},
	})

	// Client orders a logo.
	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", clientToken, map[string]any{
		"service_id":  logoServiceID,
		"description": "A logo for my bakery",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeBody(t, w)["order"].(map[string]any)
	orderID := order["id"].(string)
	assert.Equal(t, "pending", order["status"])
	assert.EqualValues(t, 50000, order["price"])

	// The order shows up in the designer's pending queue.
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/pending", designerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	pending := decodeBody(t, w)["orders"].([]any)
	require.Len(t, pending, 1)

	// Designer accepts it.
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders/"+orderID+"/accept", designerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	accepted := decodeBody(t, w)["order"].(map[string]any)
	assert.Equal(t, "assigned", accepted["status"])

	// A second accept attempt is rejected.
	otherToken := registerAndLogin(t, router, map[string]any{
		"email":        "late@example.com",
		"password":     "secret123",
		"user_type":    "designer",
		"username":     "late_designer",
		"software_ids": []string{photoshopID},
	})
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders/"+orderID+"/accept", otherToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// The parties exchange messages on the thread.
	w = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", designerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	designerID := decodeBody(t, w)["user"].(map[string]any)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/messages", clientToken, map[string]any{
		"order_id":    orderID,
		"receiver_id": designerID,
		"content":     "Please use warm colors",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/messages/unread-count", designerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])

	// Designer delivers; the order completes.
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders/"+orderID+"/deliverables", designerToken, map[string]any{
		"file_name": "logo-final.png",
		"file_data": base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		"file_type": "image/png",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/"+orderID, clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	assert.Equal(t, "completed", detail["order"].(map[string]any)["status"])
	assert.Len(t, detail["deliverables"].([]any), 1)
	assert.Len(t, detail["messages"].([]any), 1)
}

func TestAnonymousMe(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["user"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaymentMethodsOverHTTP(t *testing.T) {
	router := setupTestServer(t)

	clientToken := registerAndLogin(t, router, map[string]any{
		"email":      "payer@example.com",
		"password":   "secret123",
		"user_type":  "client",
		"first_name": "Pay",
		"last_name":  "Er",
	})

	w := doJSON(t, router, http.MethodPost, "/api/v1/payment-methods", clientToken, map[string]any{
		"card_holder_name": "Pay Er",
		"card_number":      "4111111111111111",
		"expiry_month":     "09",
		"expiry_year":      "2030",
		"cvv":              "123",
		"is_default":       true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	method := decodeBody(t, w)["payment_method"].(map[string]any)
	assert.Equal(t, "1111", method["cardNumberLast4"])

	// Invalid expiry month is a validation error.
	w = doJSON(t, router, http.MethodPost, "/api/v1/payment-methods", clientToken, map[string]any{
		"card_holder_name": "Pay Er",
		"card_number":      "4111111111111111",
		"expiry_month":     "13",
		"expiry_year":      "2030",
		"cvv":              "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
