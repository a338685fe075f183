package services

import (
	"strings"

	apperrors "hotel-booking/errors"

	"github.com/dgrijalva/jwt-go"
)

// TokenParser verifies HS256 bearer tokens issued by the auth service and
// turns their userinfo claim into an Actor.
type TokenParser struct {
	secret []byte
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{secret: []byte(secret)}
}

// Parse accepts the raw token or an "Authorization: Bearer" header value.
func (p *TokenParser) Parse(tokenString string) (Actor, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))
	if tokenString == "" {
		return Actor{}, apperrors.NewAppError(apperrors.ErrCodeMissingToken, "Missing authorization token", nil)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid token", err)
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token has no user information", nil)
	}
	userID, okID := userInfo["userid"].(float64)
	if !okID || userID <= 0 {
		return Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token has no user id", nil)
	}
	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return Actor{}, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token has no role", nil)
	}
	return Actor{ID: uint(userID), RoleID: int(role)}, nil
}

// Sign issues a token for actor. Used by tests and local tooling.
func (p *TokenParser) Sign(actor Actor, expiresAt int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": actor.ID,
			"role":   actor.RoleID,
		},
		"exp": expiresAt,
	})
	return token.SignedString(p.secret)
}
