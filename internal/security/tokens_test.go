package security

import (
	"testing"
	"time"

	"github.com/Khaoshimself/online-shopping-site/configs"
	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() configs.Config {
	var cfg configs.Config
	cfg.Security.JWTSecret = "unit-test-secret"
	cfg.Security.Issuer = "shop-api"
	cfg.Security.Audience = "shop-web"
	cfg.Security.TTL = 15 * time.Minute
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	u := &domain.User{ID: "u1", Name: "alice", Role: domain.RoleAdmin}

	token, expiresIn, err := issuer.Issue(u)
	require.NoError(t, err)
	assert.EqualValues(t, 900, expiresIn)

	id, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "alice", id.Name)
	assert.Equal(t, domain.RoleAdmin, id.Role)
}

func TestTokenRejectsTampering(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	u := &domain.User{ID: "u1", Name: "alice", Role: domain.RoleUser}

	token, _, err := issuer.Issue(u)
	require.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := testConfig()
	other.Security.JWTSecret = "a-different-secret"
	_, err = NewTokenIssuer(other).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsWrongAudience(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	u := &domain.User{ID: "u1", Name: "alice", Role: domain.RoleUser}
	token, _, err := issuer.Issue(u)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Security.Audience = "someone-else"
	_, err = NewTokenIssuer(cfg).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
