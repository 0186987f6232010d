package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"

	"github.com/tidwall/gjson"
)

// SessionInvalidator clears a session whose token the backend rejected.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, sessionID string) error
}

// Backend is the shared client for the commerce REST backend. Every resource
// client is a thin set of request templates on top of it: one request per
// operation, the session's bearer token attached automatically, a single
// fixed timeout, no retry, no coalescing, no caching.
type Backend struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionInvalidator
	logger     logger.Logger
}

// NewBackend creates the shared backend client
func NewBackend(cfg *models.Config, sessions SessionInvalidator, log logger.Logger) *Backend {
	return &Backend{
		baseURL: cfg.BackendBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		sessions: sessions,
		logger:   log,
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Status handling mirrors the failure taxonomy: 401 clears the local session
// and returns ErrSessionExpired, 403 returns ErrAuthorizationDenied, anything
// else unexpected becomes an UpstreamError for the caller to display.
func (b *Backend) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	u := b.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &models.UpstreamError{Op: op, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &models.UpstreamError{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	// Attach token if available
	if session := models.SessionFromContext(ctx); session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		b.logger.Errorf("Request failed: %s %s: %v", method, path, err)
		return &models.UpstreamError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.UpstreamError{Op: op, StatusCode: resp.StatusCode, Message: err.Error()}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// The stored token is no longer accepted: clear it and force re-login.
		if session := models.SessionFromContext(ctx); session != nil {
			if err := b.sessions.Invalidate(ctx, session.ID); err != nil {
				b.logger.Errorf("Failed to invalidate session %s: %v", session.ID, err)
			}
		}
		b.logger.Warnf("Upstream 401 on %s, session cleared", op)
		return models.ErrSessionExpired

	case resp.StatusCode == http.StatusForbidden:
		b.logger.Warnf("Upstream 403 on %s", op)
		return models.ErrAuthorizationDenied

	case resp.StatusCode >= 400:
		return &models.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(respBody),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &models.UpstreamError{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return nil
}

// upstreamMessage plucks a human-readable message out of whatever error body
// the backend sent, without committing to its shape.
func upstreamMessage(body []byte) string {
	for _, key := range []string{"message", "error", "detail"} {
		if v := gjson.GetBytes(body, key); v.Exists() {
			return v.String()
		}
	}
	if len(body) == 0 {
		return "no response body"
	}
	return string(body)
}
