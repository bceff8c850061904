package tests

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DanielPopoola/gp-payment-gateway/internal/api"
	"github.com/DanielPopoola/gp-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/gp-payment-gateway/internal/config"
	"github.com/DanielPopoola/gp-payment-gateway/internal/infrastructure/gpapi"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeProcessor stands in for the GP API. Authorizations for declineToken are
// declined and capture answers are scripted per test; every request body is
// recorded.
type fakeProcessor struct {
	mu            sync.Mutex
	authRequests  []map[string]any
	captureIDs    []string
	captureStatus string
	captureResult string

	tokenCalls atomic.Int32
}

const (
	declineToken    = "decline-token"
	authorizationID = "TXN1"
	captureID       = "TXN2"
)

func (f *fakeProcessor) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ucp/accesstoken", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"token": "server-token", "seconds_to_expire": 86400})
	})
	mux.HandleFunc("POST /ucp/transactions", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.authRequests = append(f.authRequests, body)
		f.mu.Unlock()

		status, result := "PREAUTHORIZED", "SUCCESS"
		if method, _ := body["payment_method"].(map[string]any); method["id"] == declineToken {
			status, result = "DECLINED", "DECLINED"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":     authorizationID,
			"status": status,
			"action": map[string]any{"result_code": result},
		})
	})
	mux.HandleFunc("POST /ucp/transactions/{id}/capture", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.captureIDs = append(f.captureIDs, r.PathValue("id"))
		status, result := f.captureStatus, f.captureResult
		f.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{
			"id":     captureID,
			"status": status,
			"action": map[string]any{"result_code": result},
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type IntegrationTestSuite struct {
	suite.Suite
	processor *fakeProcessor
	gateway   *httptest.Server
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) SetupTest() {
	t := suite.T()

	suite.processor = &fakeProcessor{captureStatus: "CAPTURED", captureResult: "SUCCESS"}
	gp := httptest.NewServer(suite.processor.handler())
	t.Cleanup(gp.Close)

	t.Setenv("GATEWAY_PRIMARY__ENV", "test")
	t.Setenv("GATEWAY_GP_API__APP_ID", "app-id")
	t.Setenv("GATEWAY_GP_API__APP_KEY", "app-key")
	t.Setenv("GATEWAY_GP_API__BASE_URL", gp.URL+"/ucp")
	t.Setenv("GATEWAY_GP_API__REQUEST_TIMEOUT", "5s")
	t.Setenv("GATEWAY_RETRY__BASE_DELAY", "1ms")
	t.Setenv("GATEWAY_RETRY__MAX_RETRIES", "2")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	gpClient := gpapi.NewClient(cfg.GPAPI, cfg.Retry, logger)
	h := handlers.NewHandlers(services.NewPaymentService(gpClient, logger), gpClient, logger)

	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))
	h.RegisterRoutes(router)
	require.NoError(t, api.RegisterDocsRoutes(router, doc))

	suite.gateway = httptest.NewServer(router)
	t.Cleanup(suite.gateway.Close)
}

func (suite *IntegrationTestSuite) processPayment(token, zip, amount string) (*http.Response, []byte) {
	form := url.Values{}
	form.Set("payment_token", token)
	form.Set("billing_zip", zip)
	form.Set("amount", amount)

	resp, err := http.Post(suite.gateway.URL+"/process-payment", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var raw json.RawMessage
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&raw))
	return resp, raw
}

// ============================================================================
// SCENARIO A: authorize and capture succeed
// ============================================================================

func (suite *IntegrationTestSuite) TestScenarioA_AuthorizeAndCapture() {
	resp, body := suite.processPayment("valid-token", "D02 AF30", "10.00")

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.NotEmpty(resp.Header.Get(middleware.HeaderRequestID))
	suite.JSONEq(`[
		{"success": true, "message": "Payment successful! Transaction ID: TXN1", "data": {"transactionId": "TXN1"}},
		{"success": true, "message": "Capture successful! Transaction ID: TXN2", "data": {"transactionId": "TXN2"}}
	]`, string(body))

	suite.processor.mu.Lock()
	defer suite.processor.mu.Unlock()

	suite.Require().Len(suite.processor.authRequests, 1)
	auth := suite.processor.authRequests[0]
	suite.Equal("1000", auth["amount"])
	suite.Equal("EUR", auth["currency"])
	suite.Equal("LATER", auth["capture_mode"])
	suite.Equal(true, auth["allow_duplicates"])

	method := auth["payment_method"].(map[string]any)
	suite.Equal("valid-token", method["id"])
	suite.Equal(map[string]any{"postal_code": "D02AF30"}, method["billing_address"])

	suite.Equal([]string{authorizationID}, suite.processor.captureIDs)
	suite.Equal(int32(1), suite.processor.tokenCalls.Load())
}

// ============================================================================
// SCENARIO B: invalid amount never reaches the processor
// ============================================================================

func (suite *IntegrationTestSuite) TestScenarioB_InvalidAmount() {
	resp, body := suite.processPayment("valid-token", "D02AF30", "-5")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.JSONEq(`{
		"success": false,
		"message": "Payment processing failed",
		"error": {"code": "VALIDATION_ERROR", "details": "invalid amount"}
	}`, string(body))

	suite.processor.mu.Lock()
	defer suite.processor.mu.Unlock()
	suite.Empty(suite.processor.authRequests)
	suite.Empty(suite.processor.captureIDs)
	suite.Equal(int32(0), suite.processor.tokenCalls.Load())
}

// ============================================================================
// SCENARIO C: declined authorization is never captured
// ============================================================================

func (suite *IntegrationTestSuite) TestScenarioC_AuthorizationDeclined() {
	resp, body := suite.processPayment(declineToken, "D02AF30", "10.00")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.JSONEq(`{
		"success": false,
		"message": "Payment authorization failed",
		"error": {"code": "PAYMENT_DECLINED", "details": "DECLINED"}
	}`, string(body))

	suite.processor.mu.Lock()
	defer suite.processor.mu.Unlock()
	suite.Len(suite.processor.authRequests, 1)
	suite.Empty(suite.processor.captureIDs)
}

// ============================================================================
// CAPTURE DECLINED AFTER A SUCCESSFUL AUTHORIZATION
// ============================================================================

func (suite *IntegrationTestSuite) TestCaptureDeclinedAfterAuthorization() {
	suite.processor.mu.Lock()
	suite.processor.captureStatus = "DECLINED"
	suite.processor.captureResult = "DECLINED"
	suite.processor.mu.Unlock()

	resp, body := suite.processPayment("valid-token", "D02AF30", "10.00")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.JSONEq(`{
		"success": false,
		"message": "Payment capture failed",
		"error": {"code": "PAYMENT_DECLINED", "details": "DECLINED"}
	}`, string(body))

	suite.processor.mu.Lock()
	defer suite.processor.mu.Unlock()
	suite.Len(suite.processor.authRequests, 1)
	suite.Equal([]string{authorizationID}, suite.processor.captureIDs)
}

// ============================================================================
// SUPPORTING ENDPOINTS
// ============================================================================

func (suite *IntegrationTestSuite) TestConfigEndpoint() {
	resp, err := http.Get(suite.gateway.URL + "/config")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var body map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, body["success"])
	suite.Equal(map[string]any{"accessToken": "server-token"}, body["data"])
}

func (suite *IntegrationTestSuite) TestHealthAndDocs() {
	for _, path := range []string{"/health", "/openapi.json"} {
		resp, err := http.Get(suite.gateway.URL + path)
		suite.Require().NoError(err)
		resp.Body.Close()

		assert.Equal(suite.T(), http.StatusOK, resp.StatusCode, path)
	}
}
