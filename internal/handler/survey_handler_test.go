package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/melodybakes/inquiry-api/internal/service"
	"github.com/melodybakes/inquiry-api/internal/survey"
)

func newSurveyRouter(store *intakeStoreMock, limiter *limiterMock, bakeryPhone string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	intake := service.NewIntakeService(store, limiter, cacheMock{}, nil, zap.NewNop())
	svc := service.NewSurveyService(intake, bakeryPhone, zap.NewNop())
	r := gin.New()
	r.POST("/survey/quote", NewSurveyHandler(svc).Submit)
	return r
}

func surveyPayload() map[string]interface{} {
	confirmations := map[string]string{}
	for _, id := range survey.ConfirmationIDs {
		confirmations[id] = "Yes, I understand"
	}
	return map[string]interface{}{
		"cake_type":     "Chocolate fudge",
		"occasion":      "Birthday",
		"timeframe":     "2-3 weeks",
		"serving_size":  "20-30 guests",
		"budget":        "R800 - R1200",
		"delivery":      "No, I'll collect",
		"tiers":         "Single tier",
		"shape":         "Round",
		"flavour":       "Chocolate",
		"filling":       "Ganache",
		"finish":        "Buttercream",
		"toppers":       "None",
		"confirmations": confirmations,
		"name":          "Thandi Nkosi",
		"contact":       "0821234567",
		"email":         "thandi@example.com",
	}
}

func postSurvey(t *testing.T, r *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/survey/quote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSurveySubmitOK(t *testing.T) {
	store := &intakeStoreMock{}
	r := newSurveyRouter(store, &limiterMock{allow: true}, "27821234567")

	w := postSurvey(t, r, surveyPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "inq-123", resp["id"])
	assert.Contains(t, resp["whatsapp_url"], "https://wa.me/27821234567")
	require.Len(t, store.created, 1)
	require.NotNil(t, store.created[0].AdditionalNotes)
	assert.Contains(t, *store.created[0].AdditionalNotes, "=== Design Details ===")
}

func TestSurveySubmitNoPhoneOmitsLink(t *testing.T) {
	r := newSurveyRouter(&intakeStoreMock{}, &limiterMock{allow: true}, "")

	w := postSurvey(t, r, surveyPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, ok := resp["whatsapp_url"]
	assert.False(t, ok)
}

func TestSurveySubmitDeclinedTerms(t *testing.T) {
	store := &intakeStoreMock{}
	r := newSurveyRouter(store, &limiterMock{allow: true}, "")

	payload := surveyPayload()
	payload["confirmations"].(map[string]string)["deposit"] = "No"

	w := postSurvey(t, r, payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["disqualified"])
	assert.Empty(t, store.created)
}

func TestSurveySubmitBudgetTooLow(t *testing.T) {
	r := newSurveyRouter(&intakeStoreMock{}, &limiterMock{allow: true}, "")

	payload := surveyPayload()
	payload["budget"] = survey.BudgetTooLow

	w := postSurvey(t, r, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Budget range is below the custom cake minimum")
}

func TestSurveySubmitRateLimited(t *testing.T) {
	r := newSurveyRouter(&intakeStoreMock{}, &limiterMock{allow: false}, "")

	w := postSurvey(t, r, surveyPayload())
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"rateLimited":true`)
}

func TestSurveySubmitMalformedJSON(t *testing.T) {
	r := newSurveyRouter(&intakeStoreMock{}, &limiterMock{allow: true}, "")

	req, _ := http.NewRequest(http.MethodPost, "/survey/quote", bytes.NewReader([]byte("nope")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}
