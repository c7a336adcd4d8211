package sunbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/verifier"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Config Sunbase client settings
type Config struct {
	BaseURL     string
	APIKey      string
	Secret      string
	RedirectURL string
	Timeout     time.Duration
}

// Client talks to the Sunbase KYC API. A token is fetched for every call.
type Client struct {
	config Config
	client *http.Client
	logger *zap.Logger
}

var _ verifier.Client = (*Client)(nil)

// NewClient creates a Sunbase client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("sunbase"),
	}
}

type tokenRequest struct {
	APIKey string `json:"apiKey"`
	Secret string `json:"secret"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type initiateRequest struct {
	ExternalID  string `json:"external_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	RedirectURL string `json:"redirect_url"`
}

type initiateResponse struct {
	KycID           string `json:"kyc_id"`
	VerificationURL string `json:"verification_url"`
}

type statusResponse struct {
	Status              string                 `json:"status"`
	VerificationDetails map[string]interface{} `json:"verification_details"`
}

// Authenticate obtains an API token
// POST /auth/token
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, "authenticate", http.MethodPost, "/auth/token", "", tokenRequest{
		APIKey: c.config.APIKey,
		Secret: c.config.Secret,
	}, &resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", &verifier.Error{Op: "authenticate", Message: "empty token in response"}
	}
	return resp.Token, nil
}

// Initiate opens a verification for the user
// POST /kyc/initiate
func (c *Client) Initiate(ctx context.Context, req *verifier.InitiateRequest) (*verifier.InitiateResponse, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var resp initiateResponse
	if err := c.do(ctx, "initiate", http.MethodPost, "/kyc/initiate", token, initiateRequest{
		ExternalID:  req.ExternalID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		RedirectURL: c.config.RedirectURL,
	}, &resp); err != nil {
		return nil, err
	}

	if resp.KycID == "" {
		return nil, &verifier.Error{Op: "initiate", Message: "missing kyc_id in response"}
	}

	c.logger.Info("verification initiated",
		zap.String("external_id", req.ExternalID),
		zap.String("kyc_id", resp.KycID))

	return &verifier.InitiateResponse{
		VerifierKycID:   resp.KycID,
		VerificationURL: resp.VerificationURL,
	}, nil
}

// PollStatus fetches the current verification status
// GET /kyc/status/{kycId}
func (c *Client) PollStatus(ctx context.Context, verifierKycID string) (*verifier.StatusResponse, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var resp statusResponse
	path := "/kyc/status/" + url.PathEscape(verifierKycID)
	if err := c.do(ctx, "poll_status", http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	return &verifier.StatusResponse{
		Status:  resp.Status,
		Details: resp.VerificationDetails,
	}, nil
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return &verifier.Error{Op: op, Message: "failed to prepare request", Err: err}
		}
		reader = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return &verifier.Error{Op: op, Message: "failed to create request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Warn("verifier request failed", zap.String("op", op), zap.Error(err))
		return &verifier.Error{Op: op, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &verifier.Error{Op: op, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("verifier returned error status",
			zap.String("op", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return &verifier.Error{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &verifier.Error{Op: op, Message: "failed to parse response", Err: err}
	}
	return nil
}

func errorMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return fmt.Sprintf("unexpected response (%d bytes)", len(body))
}
