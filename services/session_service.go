package services

import (
	"context"
	"strings"

	"dalshop-gateway/middleware"
	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/utils/logger"
)

// SessionService owns the session lifecycle: it is the single writer of
// session state. Authentication happens in two steps, like the original flow:
// BeginAuthentication trades credentials for a token (session holds the token
// only), and CommitAuthentication stores the identity payload once the
// security question and the cipher challenge have both checked out.
type SessionService struct {
	identity IdentityProviderInterface
	sessions repository.SessionRepositoryInterface
	logger   logger.Logger
}

// NewSessionService creates a new session service
func NewSessionService(identity IdentityProviderInterface, sessions repository.SessionRepositoryInterface, log logger.Logger) *SessionService {
	return &SessionService{
		identity: identity,
		sessions: sessions,
		logger:   log,
	}
}

// BeginAuthentication exchanges credentials for a bearer token and opens a
// pending session. The identity payload is deliberately not stored yet; a
// token without identity is the transient half-open state.
func (s *SessionService) BeginAuthentication(ctx context.Context, email, password string) (*models.AuthProof, error) {
	token, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warnf("Authentication rejected for %s", email)
		return nil, err
	}

	session, err := s.sessions.Create(ctx, &models.Session{Token: token})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Authentication began, pending second factor: session %s", session.ID)
	return &models.AuthProof{
		SessionID: session.ID,
		Token:     token,
		Email:     email,
	}, nil
}

// CommitAuthentication validates the second factor against the external
// collaborators and, only then, stores the token's claims payload wholesale
// as the session identity.
func (s *SessionService) CommitAuthentication(ctx context.Context, req models.CommitRequest) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Authenticated() {
		return nil, models.ErrAuthenticationRejected
	}

	claims := middleware.IdentityClaims(session.Token)
	if claims == nil {
		// A token we cannot read is handled like rejected credentials, not
		// surfaced as a distinct failure.
		return nil, models.ErrAuthenticationRejected
	}
	email, _ := claims["email"].(string)

	expected, err := s.identity.SecurityAnswer(ctx, email, req.SecurityQuestion)
	if err != nil {
		return nil, err
	}
	if expected == "" || !strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(req.SecurityAnswer)) {
		s.logger.Warnf("Security question mismatch for session %s", session.ID)
		return nil, models.ErrSecondFactorRejected
	}

	shift, err := s.identity.CipherShiftKey(ctx, email)
	if err != nil {
		return nil, err
	}
	if CaesarShift(req.CipherText, shift) != strings.ToUpper(strings.TrimSpace(req.CipherAnswer)) {
		s.logger.Warnf("Cipher challenge failed for session %s", session.ID)
		return nil, models.ErrSecondFactorRejected
	}

	// Identity is replaced wholesale on each authentication, never merged.
	session.Identity = claims
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Infof("Session verified: %s", session.ID)
	return session, nil
}

// EndSession clears token and identity together. Calling it twice leaves the
// session in the same cleared state as calling it once.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Infof("Session ended: %s", sessionID)
	return nil
}

// Register forwards a sign-up to the identity provider.
func (s *SessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.identity.Register(ctx, req)
}

// ConfirmVerification confirms a pending registration.
func (s *SessionService) ConfirmVerification(ctx context.Context, email, code string) error {
	return s.identity.ConfirmVerification(ctx, email, code)
}

// ResendVerificationCode requests a fresh verification code.
func (s *SessionService) ResendVerificationCode(ctx context.Context, email string) error {
	return s.identity.ResendVerificationCode(ctx, email)
}

// CaesarShift applies the cipher challenge's shift to the uppercase letters
// of text. Non-letters pass through unchanged.
func CaesarShift(text string, shift int) string {
	shift = ((shift % 26) + 26) % 26
	out := []rune(strings.ToUpper(text))
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = 'A' + (r-'A'+rune(shift))%26
		}
	}
	return string(out)
}
