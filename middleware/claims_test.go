package middleware

import (
	"testing"

	"dalshop-gateway/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// mintToken builds a signed token with the given claims. The signature key is
// irrelevant because role extraction never verifies it.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	assert.NoError(t, err)
	return signed
}

func TestRoleFromTokenUserGroup(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub":       "user-123",
		GroupsClaim: []string{"User"},
		"email":     "shopper@example.com",
	})

	assert.Equal(t, models.RoleUser, RoleFromToken(token))
}

func TestRoleFromTokenAdminGroup(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub":       "admin-1",
		GroupsClaim: []string{"Admin"},
	})

	assert.Equal(t, models.RoleAdmin, RoleFromToken(token))
}

func TestRoleFromTokenFirstGroupWins(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		GroupsClaim: []string{"Admin", "User"},
	})

	assert.Equal(t, models.RoleAdmin, RoleFromToken(token))
}

func TestRoleFromTokenMissingGroupsClaim(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub": "user-123",
	})

	assert.Equal(t, models.RoleUnknown, RoleFromToken(token))
}

func TestRoleFromTokenEmptyGroups(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		GroupsClaim: []string{},
	})

	assert.Equal(t, models.RoleUnknown, RoleFromToken(token))
}

func TestRoleFromTokenGroupsNotAList(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		GroupsClaim: "Admin",
	})

	assert.Equal(t, models.RoleUnknown, RoleFromToken(token))
}

func TestRoleFromTokenMalformed(t *testing.T) {
	assert.Equal(t, models.RoleUnknown, RoleFromToken("not-a-jwt"))
	assert.Equal(t, models.RoleUnknown, RoleFromToken("a.b"))
	assert.Equal(t, models.RoleUnknown, RoleFromToken(""))
}

func TestRoleFromTokenUnrecognizedGroupStillReturned(t *testing.T) {
	// The reader reports what the token claims; only the gate decides
	// whether the role is acceptable.
	token := mintToken(t, jwt.MapClaims{
		GroupsClaim: []string{"Auditor"},
	})

	assert.Equal(t, models.Role("Auditor"), RoleFromToken(token))
}

func TestIdentityClaimsRoundTrip(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub":   "user-42",
		"email": "shopper@example.com",
	})

	claims := IdentityClaims(token)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-42", claims["sub"])
	assert.Equal(t, "shopper@example.com", claims["email"])
}

func TestIdentityClaimsMalformed(t *testing.T) {
	assert.Nil(t, IdentityClaims(""))
	assert.Nil(t, IdentityClaims("garbage"))
}
