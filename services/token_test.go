package services

import (
	"testing"
	"time"

	apperrors "hotel-booking/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenParser_RoundTrip(t *testing.T) {
	p := NewTokenParser("secret")
	token, err := p.Sign(Actor{ID: 12, RoleID: 2}, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)

	actor, err := p.Parse("Bearer " + token)

	require.NoError(t, err)
	assert.Equal(t, Actor{ID: 12, RoleID: 2}, actor)
}

func TestTokenParser_Rejects(t *testing.T) {
	p := NewTokenParser("secret")
	expired, _ := p.Sign(Actor{ID: 1, RoleID: 1}, time.Now().Add(-time.Hour).Unix())
	foreign, _ := NewTokenParser("other").Sign(Actor{ID: 1, RoleID: 1}, time.Now().Add(time.Hour).Unix())
	noInfo, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("secret"))

	cases := map[string]string{
		"empty":         "",
		"garbage":       "not.a.token",
		"expired":       expired,
		"wrong secret":  foreign,
		"no user claim": noInfo,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := p.Parse(token)
			assert.Equal(t, apperrors.KindUnauthenticated, apperrors.KindOf(err))
		})
	}
}
