package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"

	"github.com/tidwall/gjson"
)

// IdentityClient talks to the hosted identity provider. The gateway treats it
// as opaque: credentials go in, a bearer token comes out. Nothing here
// verifies that token; the claims inside it are read elsewhere, unverified,
// for routing only.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewIdentityClient creates a new identity provider client
func NewIdentityClient(cfg *models.Config, log logger.Logger) *IdentityClient {
	return &IdentityClient{
		baseURL: cfg.IdentityBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

func (c *IdentityClient) post(ctx context.Context, op, path string, body interface{}) ([]byte, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, &models.UpstreamError{Op: op, Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, &models.UpstreamError{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("Identity request failed: %s: %v", path, err)
		return nil, 0, &models.UpstreamError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &models.UpstreamError{Op: op, StatusCode: resp.StatusCode, Message: err.Error()}
	}
	return respBody, resp.StatusCode, nil
}

// Authenticate exchanges credentials for a bearer token with embedded claims.
func (c *IdentityClient) Authenticate(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	respBody, status, err := c.post(ctx, "identity.authenticate", "/authenticate", body)
	if err != nil {
		return "", err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return "", models.ErrAuthenticationRejected
	}
	if status >= 400 {
		return "", &models.UpstreamError{Op: "identity.authenticate", StatusCode: status, Message: upstreamMessage(respBody)}
	}

	token := gjson.GetBytes(respBody, "token").String()
	if token == "" {
		return "", &models.UpstreamError{Op: "identity.authenticate", StatusCode: status, Message: "no token in response"}
	}
	return token, nil
}

// Register creates a pending identity. Verification completes separately.
func (c *IdentityClient) Register(ctx context.Context, req models.RegisterRequest) error {
	respBody, status, err := c.post(ctx, "identity.register", "/register", req)
	if err != nil {
		return err
	}
	if status >= 400 {
		return &models.UpstreamError{Op: "identity.register", StatusCode: status, Message: upstreamMessage(respBody)}
	}
	return nil
}

// ConfirmVerification confirms a registration with the emailed code.
func (c *IdentityClient) ConfirmVerification(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	respBody, status, err := c.post(ctx, "identity.confirm", "/confirm", body)
	if err != nil {
		return err
	}
	if status >= 400 {
		return &models.UpstreamError{Op: "identity.confirm", StatusCode: status, Message: upstreamMessage(respBody)}
	}
	return nil
}

// ResendVerificationCode asks for a fresh code.
func (c *IdentityClient) ResendVerificationCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	respBody, status, err := c.post(ctx, "identity.resend", "/resend", body)
	if err != nil {
		return err
	}
	if status >= 400 {
		return &models.UpstreamError{Op: "identity.resend", StatusCode: status, Message: upstreamMessage(respBody)}
	}
	return nil
}

// SecurityAnswer fetches the stored answer for a user's security question.
// The comparison happens in the session service.
func (c *IdentityClient) SecurityAnswer(ctx context.Context, email, question string) (string, error) {
	body := map[string]string{"email": email, "question": question}
	respBody, status, err := c.post(ctx, "identity.security_answer", "/getSecurityAnswer", body)
	if err != nil {
		return "", err
	}
	if status >= 400 {
		return "", &models.UpstreamError{Op: "identity.security_answer", StatusCode: status, Message: upstreamMessage(respBody)}
	}
	return gjson.GetBytes(respBody, "answer").String(), nil
}

// CipherShiftKey fetches the user's Caesar-cipher shift key for the second
// factor challenge.
func (c *IdentityClient) CipherShiftKey(ctx context.Context, email string) (int, error) {
	body := map[string]string{"email": email}
	respBody, status, err := c.post(ctx, "identity.shift_key", "/getShiftKey", body)
	if err != nil {
		return 0, err
	}
	if status >= 400 {
		return 0, &models.UpstreamError{Op: "identity.shift_key", StatusCode: status, Message: upstreamMessage(respBody)}
	}

	key := gjson.GetBytes(respBody, "shiftKey")
	if !key.Exists() {
		return 0, &models.UpstreamError{Op: "identity.shift_key", StatusCode: status, Message: "no shift key in response"}
	}
	return int(key.Int()), nil
}
