package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dalshop-gateway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// IdentityClientTestSuite defines a test suite for the identity provider client
type IdentityClientTestSuite struct {
	suite.Suite
	lastPath string
	lastBody map[string]interface{}
	handler  http.HandlerFunc
	server   *httptest.Server
	client   *IdentityClient
}

// SetupTest runs before each test
func (suite *IdentityClientTestSuite) SetupTest() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.lastPath = r.URL.Path
		suite.lastBody = nil
		if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
			json.Unmarshal(raw, &suite.lastBody)
		}
		suite.handler(w, r)
	}))

	cfg := &models.Config{
		IdentityBaseURL: suite.server.URL,
		RequestTimeout:  2 * time.Second,
	}
	suite.client = NewIdentityClient(cfg, newQuietLogger())
}

// TearDownTest runs after each test
func (suite *IdentityClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *IdentityClientTestSuite) TestAuthenticate() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"token-abc"}`))
	}

	token, err := suite.client.Authenticate(context.Background(), "shopper@example.com", "secret123")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "token-abc", token)
	assert.Equal(suite.T(), "/authenticate", suite.lastPath)
	assert.Equal(suite.T(), "shopper@example.com", suite.lastBody["email"])
}

func (suite *IdentityClientTestSuite) TestAuthenticateRejected() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	token, err := suite.client.Authenticate(context.Background(), "shopper@example.com", "wrong")

	assert.ErrorIs(suite.T(), err, models.ErrAuthenticationRejected)
	assert.Empty(suite.T(), token)
}

func (suite *IdentityClientTestSuite) TestAuthenticateNoToken() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}

	_, err := suite.client.Authenticate(context.Background(), "shopper@example.com", "secret123")

	var upstream *models.UpstreamError
	assert.ErrorAs(suite.T(), err, &upstream)
}

func (suite *IdentityClientTestSuite) TestSecurityAnswer() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer":"rex"}`))
	}

	answer, err := suite.client.SecurityAnswer(context.Background(), "shopper@example.com", "First pet?")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "rex", answer)
	assert.Equal(suite.T(), "/getSecurityAnswer", suite.lastPath)
}

func (suite *IdentityClientTestSuite) TestCipherShiftKey() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"shiftKey":3}`))
	}

	shift, err := suite.client.CipherShiftKey(context.Background(), "shopper@example.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, shift)
	assert.Equal(suite.T(), "/getShiftKey", suite.lastPath)
}

func (suite *IdentityClientTestSuite) TestRegister() {
	req := models.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
	}

	err := suite.client.Register(context.Background(), req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/register", suite.lastPath)
}

func (suite *IdentityClientTestSuite) TestRegisterUpstreamError() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already registered"}`))
	}

	err := suite.client.Register(context.Background(), models.RegisterRequest{Email: "dup@example.com"})

	var upstream *models.UpstreamError
	assert.ErrorAs(suite.T(), err, &upstream)
	assert.Equal(suite.T(), "email already registered", upstream.Message)
}

func (suite *IdentityClientTestSuite) TestConfirmAndResend() {
	assert.NoError(suite.T(), suite.client.ConfirmVerification(context.Background(), "new@example.com", "123456"))
	assert.Equal(suite.T(), "/confirm", suite.lastPath)

	assert.NoError(suite.T(), suite.client.ResendVerificationCode(context.Background(), "new@example.com"))
	assert.Equal(suite.T(), "/resend", suite.lastPath)
}

func TestIdentityClientTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityClientTestSuite))
}
