package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"familytravel/internal/models/request_models"
	"familytravel/internal/models/response_models"
	"familytravel/pkg/utils"
)

type stubPlanService struct {
	plan *response_models.TravelPlan
	err  error
	got  request_models.PlanRequest
}

func (s *stubPlanService) CreatePlan(_ context.Context, req request_models.PlanRequest) (*response_models.TravelPlan, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func newTestRouter(svc *stubPlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPlanController(svc)

	r := gin.New()
	r.GET("/health", controller.HealthHandler)
	r.POST("/api/plans", controller.CreatePlanHandler)
	return r
}

func postPlans(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var payload utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestCreatePlanHandlerSuccess(t *testing.T) {
	svc := &stubPlanService{plan: &response_models.TravelPlan{
		Destination: "Lisbon",
		Days:        2,
		Itinerary:   &response_models.Itinerary{},
		Map:         &response_models.MapDocument{},
	}}
	r := newTestRouter(svc)

	w, payload := postPlans(t, r, `{"destination": "Lisbon", "days": 2, "with_kids": true, "kids_ages": [5, 8]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", payload.Status)
	require.Equal(t, "Travel plan created successfully", payload.Message)
	require.NotNil(t, payload.Data)

	require.Equal(t, "Lisbon", svc.got.Destination)
	require.Equal(t, 2, svc.got.Days)
	require.True(t, svc.got.WithKids)
	require.Equal(t, []int{5, 8}, svc.got.KidsAges)
}

func TestCreatePlanHandlerRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(&stubPlanService{})

	w, payload := postPlans(t, r, `{"destination": `)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "error", payload.Status)
	require.Equal(t, "Invalid request format", payload.Message)
}

func TestCreatePlanHandlerRejectsBindingViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing destination", `{"days": 3}`},
		{"days above limit", `{"destination": "Lisbon", "days": 31}`},
		{"age above limit", `{"destination": "Lisbon", "days": 3, "kids_ages": [25]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubPlanService{})
			w, _ := postPlans(t, r, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreatePlanHandlerMapsServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantPhrase string
	}{
		{"generation failure", utils.ErrItineraryGeneration, http.StatusBadGateway, "try again"},
		{"unexpected AI output", utils.ErrUnexpectedBehaviorOfAI, http.StatusBadGateway, "try again"},
		{"destination unknown", utils.ErrDestinationNotFound, http.StatusUnprocessableEntity, "destination"},
		{"invalid input", utils.ErrInvalidInput, http.StatusBadRequest, "Invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubPlanService{err: tt.err})
			w, payload := postPlans(t, r, `{"destination": "Lisbon", "days": 2}`)

			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, "error", payload.Status)
			require.Contains(t, payload.Message, tt.wantPhrase)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(&stubPlanService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "healthy")
}
