package gpapi

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/config"
	"github.com/google/uuid"
)

const (
	headerAPIVersion = "X-GP-Version"
	nonceLayout      = "01/02/2006 03:04:05.000 PM"
	maxErrorBodySize = 64 << 10
)

var (
	_ application.GatewayClient     = (*Client)(nil)
	_ application.AccessTokenIssuer = (*Client)(nil)
)

// Client talks to the GP API over REST. It is safe for concurrent use.
type Client struct {
	cfg        config.GPAPIConfig
	baseURL    string
	httpClient *http.Client
	retry      retryPolicy
	tokens     *tokenCache
	logger     *slog.Logger
	now        func() time.Time
}

func NewClient(cfg config.GPAPIConfig, retryCfg config.RetryConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		cfg:     cfg,
		baseURL: cfg.URL(),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		retry:  newRetryPolicy(retryCfg),
		logger: logger.With("component", "gpapi"),
		now:    time.Now,
	}
	c.tokens = newTokenCache(func(ctx context.Context) (*accessTokenResponse, error) {
		return c.requestAccessToken(ctx, nil)
	})
	return c
}

// Authorize places a hold for the amount. The hold is captured later with
// CaptureByID.
func (c *Client) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.TransactionOutcome, error) {
	body := transactionRequest{
		AccountName:     accountNameTransactions,
		Channel:         c.cfg.Channel,
		Type:            transactionTypeSale,
		CaptureMode:     captureModeLater,
		Amount:          strconv.FormatInt(req.Amount.MinorUnits(), 10),
		Currency:        req.Amount.Currency,
		Country:         c.cfg.Country,
		Reference:       uuid.NewString(),
		AllowDuplicates: req.AllowDuplicates,
		PaymentMethod: paymentMethod{
			EntryMode: entryModeECOM,
			ID:        req.Token,
		},
	}
	if req.Address.PostalCode != "" {
		body.PaymentMethod.BillingAddress = &billingAddress{PostalCode: req.Address.PostalCode}
	}

	resp, err := sendAuthenticated[transactionRequest, transactionResponse](c, ctx, c.baseURL+"/transactions", &body)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "authorization answered",
		"transaction_id", resp.ID,
		"status", resp.Status,
		"result_code", resp.Action.ResultCode,
		"reference", body.Reference,
	)
	return resp.toOutcome(), nil
}

// CaptureByID settles a previous authorization for its full amount.
func (c *Client) CaptureByID(ctx context.Context, transactionID string) (*application.TransactionOutcome, error) {
	endpoint := fmt.Sprintf("%s/transactions/%s/capture", c.baseURL, url.PathEscape(transactionID))

	resp, err := sendAuthenticated[captureRequest, transactionResponse](c, ctx, endpoint, &captureRequest{})
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "capture answered",
		"transaction_id", resp.ID,
		"status", resp.Status,
		"result_code", resp.Action.ResultCode,
	)
	return resp.toOutcome(), nil
}

// GenerateAccessToken issues a fresh token limited to permissions. It does
// not touch the cached token used for transactions.
func (c *Client) GenerateAccessToken(ctx context.Context, permissions []string) (*application.AccessToken, error) {
	resp, err := c.requestAccessToken(ctx, permissions)
	if err != nil {
		return nil, err
	}
	return &application.AccessToken{
		Token:           resp.Token,
		SecondsToExpire: resp.SecondsToExpire,
	}, nil
}

// WarmToken fetches a transaction token unless a fresh one is cached.
func (c *Client) WarmToken(ctx context.Context) error {
	_, err := c.tokens.get(ctx)
	return err
}

// requestAccessToken is retried: issuing a token has no side effect on the
// merchant account.
func (c *Client) requestAccessToken(ctx context.Context, permissions []string) (*accessTokenResponse, error) {
	return retry(ctx, c.retry, func(ctx context.Context) (*accessTokenResponse, error) {
		nonce := c.now().UTC().Format(nonceLayout)
		body := accessTokenRequest{
			AppID:       c.cfg.AppID,
			Nonce:       nonce,
			Secret:      tokenSecret(nonce, c.cfg.AppKey),
			GrantType:   grantTypeClientCredentials,
			Permissions: permissions,
		}

		resp, err := sendRequest[accessTokenRequest, accessTokenResponse](c, ctx, c.baseURL+"/accesstoken", "", &body)
		if err != nil {
			return nil, err
		}
		if resp.Token == "" {
			return nil, transportError(http.StatusOK, msgUnexpectedResponse, errors.New("access token response without token"))
		}
		return resp, nil
	})
}

// tokenSecret is the hex SHA-512 digest of nonce followed by the app key.
func tokenSecret(nonce, appKey string) string {
	sum := sha512.Sum512([]byte(nonce + appKey))
	return hex.EncodeToString(sum[:])
}

// sendAuthenticated sends a transaction call with the cached bearer token.
// A 401 drops the token so the next call fetches a new one; the call itself
// is not repeated. A token request the processor rejects means the client is
// misconfigured and is reported as an internal error.
func sendAuthenticated[Req any, Resp any](c *Client, ctx context.Context, endpoint string, reqBody *Req) (*Resp, error) {
	token, err := c.tokens.get(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to obtain access token", "error", err)
		if application.CategorizeGatewayError(err) == application.CategoryStructured {
			return nil, application.NewInternalError(fmt.Errorf("access token rejected: %w", err))
		}
		return nil, err
	}

	resp, err := sendRequest[Req, Resp](c, ctx, endpoint, token, reqBody)
	if gwErr, ok := application.IsGatewayError(err); ok && gwErr.StatusCode == http.StatusUnauthorized {
		c.tokens.invalidate(token)
	}
	return resp, err
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, endpoint, token string, reqBody *Req) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerAPIVersion, c.cfg.APIVersion)
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(0, msgUnreachable, fmt.Errorf("error making request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, decodeError(resp.StatusCode, body)
	}

	var gpResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&gpResp); err != nil {
		return nil, transportError(resp.StatusCode, msgUnexpectedResponse,
			fmt.Errorf("error decoding json response: %w", err))
	}

	return &gpResp, nil
}
