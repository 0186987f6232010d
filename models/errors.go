package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Every backend call maps onto one
// of these; nothing here is fatal to the process.
var (
	// ErrAuthenticationRejected means the identity provider refused the
	// presented credentials.
	ErrAuthenticationRejected = errors.New("authentication rejected")

	// ErrSessionExpired means an authenticated call came back 401. The local
	// token has already been cleared by the time callers see this.
	ErrSessionExpired = errors.New("session expired")

	// ErrAuthorizationDenied means the backend answered 403, or the route
	// gate found a role mismatch.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrSecondFactorRejected means the security question or cipher
	// challenge did not check out during login commit.
	ErrSecondFactorRejected = errors.New("second factor rejected")
)

// UpstreamError is any other request failure (TransientNetworkFailure in the
// taxonomy). It is surfaced to the caller for display and never retried,
// except for the single documented cart-clear retry during checkout.
type UpstreamError struct {
	Op         string // e.g. "cart.get"
	StatusCode int    // 0 when the request never completed
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: upstream returned %d: %s", e.Op, e.StatusCode, e.Message)
}
