package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-management-service/internal/core/domain"
)

// stubDashboardUseCase возвращает заранее подготовленный результат
// и запоминает запрос, с которым его вызвали.
type stubDashboardUseCase struct {
	lastQuery domain.DashboardQuery
	result    *domain.DashboardResult
}

func (s *stubDashboardUseCase) Execute(ctx context.Context, query domain.DashboardQuery) *domain.DashboardResult {
	s.lastQuery = query
	return s.result
}

func fixedGeneratedAt() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestGetDashboard_IncludeCSVParsing(t *testing.T) {
	stub := &stubDashboardUseCase{
		result: &domain.DashboardResult{
			Include:     domain.IncludeSet{Properties: true},
			Properties:  []domain.Property{{ID: uuid.New(), Name: "Sunrise", TotalUnits: 2}},
			GeneratedAt: fixedGeneratedAt(),
		},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/batch/dashboard?include=properties,%20stats", nil)
	rec := httptest.NewRecorder()

	handler.GetDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"properties", "stats"}, stub.lastQuery.Include)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "properties")
	assert.NotContains(t, body, "tenants")
	assert.NotContains(t, body, "stats")
	assert.Contains(t, body, "timestamp")
}

func TestPostDashboard_MalformedBodyReturns500(t *testing.T) {
	stub := &stubDashboardUseCase{result: &domain.DashboardResult{GeneratedAt: fixedGeneratedAt()}}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/dashboard", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.PostDashboard(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to process dashboard request", body["error"])
}

func TestPostDashboard_ParsesTimeRangeAndFilters(t *testing.T) {
	stub := &stubDashboardUseCase{
		result: &domain.DashboardResult{
			Include:     domain.IncludeSet{Payments: true},
			GeneratedAt: fixedGeneratedAt(),
		},
	}
	handler := NewDashboardHandler(stub)

	reqBody := `{
		"include": ["payments"],
		"timeRange": {"start": "2024-01-01", "end": "2024-03-31T23:59:59Z"},
		"filters": {"property_ids": ["p1", "p2"], "payment_status": "paid", "tenant_status": "garbage-but-ok"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/dashboard", strings.NewReader(reqBody))
	rec := httptest.NewRecorder()

	handler.PostDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"payments"}, stub.lastQuery.Include)
	require.NotNil(t, stub.lastQuery.TimeRangeStart)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *stub.lastQuery.TimeRangeStart)
	require.NotNil(t, stub.lastQuery.TimeRangeEnd)
	assert.Equal(t, []string{"p1", "p2"}, stub.lastQuery.PropertyIDs)
	assert.Equal(t, "paid", stub.lastQuery.PaymentStatus)
}

func TestPostDashboard_BadDateValuesAreDropped(t *testing.T) {
	stub := &stubDashboardUseCase{result: &domain.DashboardResult{GeneratedAt: fixedGeneratedAt()}}
	handler := NewDashboardHandler(stub)

	reqBody := `{"timeRange": {"start": "not-a-date", "end": ""}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/dashboard", strings.NewReader(reqBody))
	rec := httptest.NewRecorder()

	handler.PostDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stub.lastQuery.TimeRangeStart)
	assert.Nil(t, stub.lastQuery.TimeRangeEnd)
}

func TestPostDashboard_PartialFailureKeeps200(t *testing.T) {
	stub := &stubDashboardUseCase{
		result: &domain.DashboardResult{
			Include:    domain.IncludeSet{Properties: true, Tenants: true},
			Properties: []domain.Property{{ID: uuid.New(), Name: "Sunrise"}},
			Errors: []domain.FetchError{
				{Entity: "tenants", Message: "connection refused"},
			},
			GeneratedAt: fixedGeneratedAt(),
		},
	}
	handler := NewDashboardHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/batch/dashboard", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.PostDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "tenants", body.Errors[0].Entity)
	// Сбойная, но запрошенная секция присутствует как пустой массив.
	require.NotNil(t, body.Tenants)
	assert.Empty(t, *body.Tenants)
}

func TestDashboardResponse_RequestedEmptyAlertsSerializedAsArray(t *testing.T) {
	result := &domain.DashboardResult{
		Include:     domain.IncludeSet{Alerts: true},
		Alerts:      []domain.Alert{},
		GeneratedAt: fixedGeneratedAt(),
	}

	raw, err := json.Marshal(toDashboardResponse(result))
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Contains(t, body, "alerts")
	assert.JSONEq(t, `[]`, string(body["alerts"]))
	assert.NotContains(t, body, "properties")
}
