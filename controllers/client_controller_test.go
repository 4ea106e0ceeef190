package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

func setupClientRouter(s *stores.Stores) *gin.Engine {
	router := gin.New()
	ctl := NewClientController(s.Clients)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/clients", ctl.List)
		v1.GET("/clients/:id", ctl.Get)
		v1.POST("/clients", ctl.Create)
		v1.PATCH("/clients/:id", ctl.Update)
		v1.PATCH("/clients/:id/status", ctl.UpdateStatus)
		v1.DELETE("/clients/:id", ctl.Delete)
	}
	return router
}

func validClientBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Anita Jewellers",
		"email":   "anita@example.com",
		"phone":   "9812345678",
		"address": "14 MG Road",
		"city":    "Bengaluru",
	}
}

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(body map[string]interface{})
		expectedStatus int
	}{
		{
			name:           "creates with defaults",
			mutate:         func(body map[string]interface{}) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "rejects a malformed email",
			mutate: func(body map[string]interface{}) {
				body["email"] = "not-an-email"
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "rejects a short address",
			mutate: func(body map[string]interface{}) {
				body["address"] = "x"
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "rejects a short phone",
			mutate: func(body map[string]interface{}) {
				body["phone"] = "12345"
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStores()
			router := setupClientRouter(s)

			body := validClientBody()
			tt.mutate(body)

			w := performRequest(t, router, http.MethodPost, "/api/v1/clients", body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				data := responseData(t, w)
				assert.NotEmpty(t, data["id"])
				assert.Equal(t, models.ClientActive, data["status"])
				assert.Equal(t, float64(0), data["totalOrders"])
				assert.Equal(t, "0", data["totalValue"])
			} else {
				all, err := s.Clients.List()
				require.NoError(t, err)
				assert.Empty(t, all)
			}
		})
	}
}

func TestClientStatusLifecycle(t *testing.T) {
	s := newTestStores()
	router := setupClientRouter(s)

	created, err := s.Clients.Create(models.Client{
		Name: "Meera Gems", Email: "meera@example.com", Phone: "9898989898",
		Address: "2 Park Street", City: "Kolkata",
	})
	require.NoError(t, err)

	w := performRequest(t, router, http.MethodPatch, "/api/v1/clients/"+created.ID+"/status",
		map[string]interface{}{"status": "inactive"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inactive", responseData(t, w)["status"])

	w = performRequest(t, router, http.MethodPatch, "/api/v1/clients/"+created.ID+"/status",
		map[string]interface{}{"status": "dormant"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, router, http.MethodPatch, "/api/v1/clients/no-such-id/status",
		map[string]interface{}{"status": "active"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateClient(t *testing.T) {
	s := newTestStores()
	router := setupClientRouter(s)

	created, err := s.Clients.Create(models.Client{
		Name: "Ratan & Sons", Email: "ratan@example.com", Phone: "9123456789",
		Address: "7 Chandni Chowk", City: "Delhi",
	})
	require.NoError(t, err)

	w := performRequest(t, router, http.MethodPatch, "/api/v1/clients/"+created.ID,
		map[string]interface{}{"city": "Gurugram", "totalOrders": 3})
	assert.Equal(t, http.StatusOK, w.Code)

	data := responseData(t, w)
	assert.Equal(t, "Gurugram", data["city"])
	assert.Equal(t, float64(3), data["totalOrders"])
	assert.Equal(t, "Ratan & Sons", data["name"])
}

func TestDeleteClient(t *testing.T) {
	s := newTestStores()
	router := setupClientRouter(s)

	created, err := s.Clients.Create(models.Client{
		Name: "Tanishq Retail", Email: "retail@example.com", Phone: "9000000000",
		Address: "1 Brigade Road", City: "Bengaluru",
	})
	require.NoError(t, err)

	w := performRequest(t, router, http.MethodDelete, "/api/v1/clients/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(t, router, http.MethodGet, "/api/v1/clients/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
