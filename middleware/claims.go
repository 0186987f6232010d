package middleware

import (
	"dalshop-gateway/models"

	"github.com/golang-jwt/jwt/v5"
)

// GroupsClaim is the multi-value claim the identity provider puts the user's
// groups in. The first entry is the role.
const GroupsClaim = "cognito:groups"

// RoleFromToken answers "what does the token claim", not "is the token
// valid": it decodes the payload segment without checking signature or
// expiry, and returns the first entry of the groups claim. Malformed tokens
// and missing or empty group claims all come back as RoleUnknown, never as an
// error; callers treat that as "no role".
//
// Because nothing is verified, the result is a routing hint only. The
// commerce backend re-authorizes every privileged operation itself.
func RoleFromToken(tokenString string) models.Role {
	claims := IdentityClaims(tokenString)
	if claims == nil {
		return models.RoleUnknown
	}

	groups, ok := claims[GroupsClaim].([]interface{})
	if !ok || len(groups) == 0 {
		return models.RoleUnknown
	}

	first, ok := groups[0].(string)
	if !ok || first == "" {
		return models.RoleUnknown
	}
	return models.Role(first)
}

// IdentityClaims decodes the token's full claims payload without verifying
// anything. Returns nil for malformed input.
func IdentityClaims(tokenString string) map[string]interface{} {
	if tokenString == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}
