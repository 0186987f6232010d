package models

// AuthProof is what BeginAuthentication hands back: the identity provider has
// accepted the credentials and issued a token, but the session is not
// considered verified until the second factor is committed.
type AuthProof struct {
	SessionID string `json:"session_id"`
	Token     string `json:"-"`
	Email     string `json:"email"`
}

// LoginRequest is the credential form for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// CommitRequest carries the second-factor answers for POST /auth/commit.
// The security answer and the cipher answer are validated against the
// external collaborators before the session is marked verified.
type CommitRequest struct {
	SessionID        string `json:"session_id" binding:"required"`
	SecurityQuestion string `json:"security_question" binding:"required"`
	SecurityAnswer   string `json:"security_answer" binding:"required"`
	CipherText       string `json:"cipher_text" binding:"required"`
	CipherAnswer     string `json:"cipher_answer" binding:"required"`
}

// RegisterRequest is the sign-up form for POST /auth/register
type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email" example:"user@example.com"`
	Password         string `json:"password" binding:"required,min=8" example:"securePassword123"`
	FirstName        string `json:"first_name" binding:"required" example:"John"`
	LastName         string `json:"last_name" binding:"required" example:"Doe"`
	Role             string `json:"role,omitempty" binding:"omitempty,rolename" example:"User"`
	SecurityQuestion string `json:"security_question" binding:"required"`
	SecurityAnswer   string `json:"security_answer" binding:"required"`
}

// VerifyRequest confirms a pending registration with the emailed code.
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResendRequest asks the identity provider for a fresh verification code.
type ResendRequest struct {
	Email string `json:"email" binding:"required,email"`
}
