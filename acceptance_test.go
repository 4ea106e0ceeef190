package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerStartup verifies the full router can be assembled
func TestServerStartup(t *testing.T) {
	router := newTestRouter()
	assert.NotNil(t, router, "Router should be initialized")
}

// TestWorkshopWorkflowAcceptance walks the workshop lifecycle end to end:
// hire a karigar, register a client, commission an order, complete stages,
// deliver, and verify the order disappears cleanly.
func TestWorkshopWorkflowAcceptance(t *testing.T) {
	router := newTestRouter()

	// Hire a karigar and mark him busy.
	w := doJSON(t, router, http.MethodPost, "/api/v1/karigars", map[string]interface{}{
		"name": "Ramesh Kumar", "skill": "Stone Setting", "experience": "12 years",
		"location": "Jaipur", "contactNumber": "9876543210", "rating": 4.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	karigarID := dataOf(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/karigars/"+karigarID+"/status",
		map[string]interface{}{"status": "busy"})
	require.Equal(t, http.StatusOK, w.Code)

	// Register the client.
	w = doJSON(t, router, http.MethodPost, "/api/v1/clients", map[string]interface{}{
		"name": "Anita Jewellers", "email": "anita@example.com", "phone": "9812345678",
		"address": "14 MG Road", "city": "Bengaluru",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	clientID := dataOf(t, w)["id"].(string)

	// Commission an order.
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"orderNumber": "ORD-100", "clientId": clientID,
		"clientName": "Anita Jewellers", "clientPhone": "9812345678",
		"orderDescription": "Pair of kundan bangles with enamel work",
		"quantity":         2, "itemType": "bangle", "metal": "Gold",
		"purity": "22Kt", "size": "2.6", "grossWeight": 42.0, "netWeight": 38.5,
		"karigarId": karigarID, "expectedDeliveryDate": "2025-07-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := dataOf(t, w)
	orderID := order["id"].(string)
	assert.Equal(t, "Design Creation", order["currentStage"])
	assert.Equal(t, float64(0), order["progress"])

	// Complete every stage.
	stages := order["stages"].([]interface{})
	for _, raw := range stages {
		stage := raw.(map[string]interface{})
		stage["isComplete"] = true
	}
	w = doJSON(t, router, http.MethodPatch, "/api/v1/orders/"+orderID,
		map[string]interface{}{"stages": stages})
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataOf(t, w)
	assert.Equal(t, float64(100), updated["progress"])
	assert.Equal(t, "Completed", updated["currentStage"])

	// Deliver everything.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/orders/"+orderID, map[string]interface{}{
		"status": "delivered", "deliveredItems": 2, "actualDeliveryDate": "2025-06-28",
	})
	require.Equal(t, http.StatusOK, w.Code)
	delivered := dataOf(t, w)
	assert.Equal(t, "delivered", delivered["status"])
	assert.Equal(t, float64(0), delivered["remainingItems"])

	// Remove the order and verify it is gone.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestValidationLeavesNoTraceAcceptance verifies a rejected create leaves
// the store untouched.
func TestValidationLeavesNoTraceAcceptance(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/assignments", map[string]interface{}{
		"title": "Rush Pendant", "description": "Pendant needed before the start date",
		"client": "Meera Gems", "karigarId": "karigar-1",
		"startDate": "2025-05-01", "deadline": "2025-04-30",
		"priority": "high", "payment": "5000",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response["data"], "a rejected create must not persist anything")
}

// TestCORSHeadersAcceptance verifies cross-origin requests are answered.
func TestCORSHeadersAcceptance(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest(http.MethodOptions, "/api/v1/karigars", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
