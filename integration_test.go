package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/karigarstudio/karigar-studio-api/config"
	"github.com/karigarstudio/karigar-studio-api/services"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// newTestRouter builds the full application router on the in-memory backing,
// with a mock image store and no sheets exporter.
func newTestRouter() *gin.Engine {
	cfg := &appconfig.Config{
		GoEnv:        "test",
		StoreBackend: appconfig.BackendMemory,
	}
	return setupRouter(cfg, zerolog.Nop(), stores.NewMemoryStores(), services.NewMockS3Service(), nil)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response["success"].(bool), "expected success, got %s", w.Body.String())
	return response["data"].(map[string]interface{})
}

// TestHealthEndpointIntegration tests the /api/v1/health endpoint with full routing
func TestHealthEndpointIntegration(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200 OK")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Karigar Studio API is running", response["message"])
}

// TestDatabaseStatusIntegration verifies the status endpoint on the memory backend
func TestDatabaseStatusIntegration(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/database/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "memory", response["backend"])
}

// TestResourceRoutesIntegration walks each resource through the full router,
// not a per-controller harness, to catch wiring mistakes.
func TestResourceRoutesIntegration(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/karigars", map[string]interface{}{
		"name": "Ramesh Kumar", "skill": "Stone Setting", "experience": "12 years",
		"location": "Jaipur", "contactNumber": "9876543210", "rating": 4.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	karigarID := dataOf(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/clients", map[string]interface{}{
		"name": "Anita Jewellers", "email": "anita@example.com", "phone": "9812345678",
		"address": "14 MG Road", "city": "Bengaluru",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	clientID := dataOf(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/assignments", map[string]interface{}{
		"title": "Bridal Necklace Set", "description": "22Kt bridal necklace with earrings",
		"client": "Anita Jewellers", "karigarId": karigarID,
		"startDate": "2025-05-01", "deadline": "2025-05-20",
		"priority": "high", "payment": "35000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assignment := dataOf(t, w)
	assert.Equal(t, true, assignment["karigar"].(map[string]interface{})["resolved"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"orderNumber": "ORD-001", "clientId": clientID,
		"clientName": "Anita Jewellers", "clientPhone": "9812345678",
		"orderDescription": "Gold ring with ruby center stone",
		"quantity":         4, "itemType": "ring", "metal": "Gold",
		"purity": "18Kt", "size": "12", "grossWeight": 15.75, "netWeight": 12.5,
		"karigarId": karigarID, "expectedDeliveryDate": "2025-06-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := dataOf(t, w)
	orderID := order["id"].(string)
	assert.Equal(t, float64(4), order["remainingItems"])
	assert.Equal(t, true, order["client"].(map[string]interface{})["resolved"])

	w = doJSON(t, router, http.MethodPatch, "/api/v1/orders/"+orderID, map[string]interface{}{
		"deliveredItems": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), dataOf(t, w)["remainingItems"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := dataOf(t, w)
	assert.Equal(t, float64(1), stats["totalKarigars"])
	assert.Equal(t, float64(1), stats["totalClients"])
	assert.Equal(t, float64(1), stats["totalAssignments"])
	assert.Equal(t, float64(1), stats["totalOrders"])
}

// TestHealthEndpointMethod tests that only GET method is allowed
func TestHealthEndpointMethod(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/health", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "POST should not be allowed")

	w = doJSON(t, router, http.MethodPut, "/api/v1/health", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "PUT should not be allowed")
}
