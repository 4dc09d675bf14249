package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/logger"
)

// roleGoals carries the per-role instruction sent alongside the context.
var roleGoals = map[string]string{
	RoleAdmissionOfficer: "Oversee the admission process and make final decisions",
	RoleDocumentChecker:  "Validate submitted applications and check documents for authenticity and completeness",
	RoleShortlisting:     "Evaluate applications based on eligibility criteria and university capacity",
	RoleCounsellor:       "Communicate effectively with students at various stages of the admission process",
}

// Client calls a hosted inference endpoint over HTTP.
type Client struct {
	baseURL    string
	model      string
	apiToken   string
	timeout    time.Duration
	httpClient *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates an oracle client. timeout bounds every Evaluate call;
// timeouts surface as ErrOracleUnavailable like any other transport failure.
func NewClient(baseURL, model, apiToken string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  baseURL,
		model:    model,
		apiToken: apiToken,
		timeout:  timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type evaluateRequest struct {
	Model   string                 `json:"model"`
	Role    string                 `json:"role"`
	Goal    string                 `json:"goal,omitempty"`
	Context map[string]interface{} `json:"context"`
}

type evaluateResponse struct {
	Output string `json:"output"`
}

// Evaluate posts the role and context to the inference endpoint and returns
// the narrative text.
func (c *Client) Evaluate(ctx context.Context, role string, input map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(evaluateRequest{
		Model:   c.model,
		Role:    role,
		Goal:    roleGoals[role],
		Context: input,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			logger.Warn().Str("role", role).Dur("timeout", c.timeout).Msg("Oracle call timed out")
		} else {
			logger.Error().Err(err).Str("role", role).Msg("Oracle call failed")
		}
		return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error().Int("status", resp.StatusCode).Str("role", role).Msg("Oracle returned non-OK status")
		return "", apperrors.NewCustomError(apperrors.ErrOracleUnavailable,
			fmt.Sprintf("oracle returned status %d", resp.StatusCode))
	}

	var parsed evaluateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Some inference backends return the narrative as plain text
		return string(body), nil
	}

	return parsed.Output, nil
}
