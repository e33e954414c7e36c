package security

import (
	"errors"
	"time"

	"github.com/Khaoshimself/online-shopping-site/configs"
	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated principal extracted from a bearer
// token.
type Identity struct {
	UserID string
	Name   string
	Role   domain.Role
}

// TokenIssuer mints and verifies HS256 bearer tokens carrying the
// user's role.
type TokenIssuer struct {
	cfg configs.Config
}

func NewTokenIssuer(cfg configs.Config) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

func (t *TokenIssuer) Issue(u *domain.User) (string, int64, error) {
	now := time.Now()
	ttl := t.cfg.Security.TTL
	claims := jwt.MapClaims{
		"iss":  t.cfg.Security.Issuer,
		"aud":  t.cfg.Security.Audience,
		"sub":  u.ID,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"name": u.Name,
		"role": string(u.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.Security.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(ttl.Seconds()), nil
}

// Verify parses and validates a raw token, returning the identity it
// carries.
func (t *TokenIssuer) Verify(raw string) (Identity, error) {
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(t.cfg.Security.JWTSecret), nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	if claims["iss"] != t.cfg.Security.Issuer || claims["aud"] != t.cfg.Security.Audience {
		return Identity{}, ErrInvalidToken
	}
	id := Identity{}
	if s, ok := claims["sub"].(string); ok {
		id.UserID = s
	}
	if s, ok := claims["name"].(string); ok {
		id.Name = s
	}
	if s, ok := claims["role"].(string); ok {
		id.Role = domain.Role(s)
	}
	if id.UserID == "" {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
