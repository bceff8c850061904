package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ProcessPayment posts the form the checkout page sends and returns the
// status code with the raw body.
func (c *TestClient) ProcessPayment(t *testing.T, token, zip, amount string) (int, []byte) {
	t.Helper()

	form := url.Values{}
	form.Set("payment_token", token)
	form.Set("billing_zip", zip)
	form.Set("amount", amount)

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/process-payment", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(t, httpReq)
}

func (c *TestClient) Config(t *testing.T) (int, []byte) {
	t.Helper()

	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+"/config", nil)
	require.NoError(t, err)
	return c.do(t, httpReq)
}

func (c *TestClient) Health() error {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}
	return nil
}

func (c *TestClient) do(t *testing.T, req *http.Request) (int, []byte) {
	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decodeSuccess(t *testing.T, body []byte) []rest.SuccessEntry {
	t.Helper()
	var entries []rest.SuccessEntry
	require.NoError(t, json.Unmarshal(body, &entries), string(body))
	return entries
}

func decodeError(t *testing.T, body []byte) rest.ErrorResponse {
	t.Helper()
	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), string(body))
	return resp
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status " + http.StatusText(e.code)
}
