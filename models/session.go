package models

import (
	"context"
	"time"
)

// Role is the coarse access level claimed by a session's token. It is derived
// from the token's group claim without verifying the token, so it is only ever
// a routing hint. The backend re-authorizes every privileged call itself.
type Role string

const (
	RoleUser    Role = "User"
	RoleAdmin   Role = "Admin"
	RoleUnknown Role = ""
)

// Session represents one browser session held by the gateway. Token and
// Identity are the two persisted fields; both absent means logged out. Token
// set with Identity absent is the transient window between raw authentication
// and second-factor confirmation.
type Session struct {
	ID        string                 `json:"id" dynamodbav:"id"`
	Token     string                 `json:"-" dynamodbav:"token"`
	Identity  map[string]interface{} `json:"identity,omitempty" dynamodbav:"identity,omitempty"`
	CreatedAt time.Time              `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" dynamodbav:"updated_at"`
}

// Authenticated reports whether the session holds a bearer token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Verified reports whether the second factor has been confirmed and the
// identity payload stored.
func (s *Session) Verified() bool {
	return s.Authenticated() && len(s.Identity) > 0
}

// Subject returns the user identifier from the identity payload, if present.
func (s *Session) Subject() string {
	if s == nil || s.Identity == nil {
		return ""
	}
	if sub, ok := s.Identity["sub"].(string); ok {
		return sub
	}
	return ""
}

// Decision is the outcome of the route gate for one navigation attempt.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "Allow"
	case RedirectToLogin:
		return "RedirectToLogin"
	case RedirectToUnauthorized:
		return "RedirectToUnauthorized"
	default:
		return "Unknown"
	}
}

type sessionContextKey struct{}

// WithSession attaches the resolved session to a request context so that the
// resource clients can pick up the bearer token without importing the
// middleware package.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext returns the session attached by the middleware, or nil.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionContextKey{}).(*Session)
	return s
}
