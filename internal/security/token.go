package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the identity extracted from a validated access token
type Claims struct {
	UserID uint
	Role   string
}

// TokenIssuer signs and validates HS256 access tokens carrying uid and role claims
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer signing with secret; tokens expire after ttl
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL is the lifetime of issued tokens
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue generates a signed access token for user
func (i *TokenIssuer) Issue(user models.User) (string, error) {
	if user.ID == 0 {
		return "", errors.New("cannot generate token: user has no id")
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	now := i.now()
	claims := jwt.MapClaims{
		"uid":  strconv.FormatUint(uint64(user.ID), 10),
		"role": role,
		"exp":  now.Add(i.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse validates tokenString and extracts its claims
func (i *TokenIssuer) Parse(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to avoid algorithm confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithIssuedAt())
	if err != nil {
		return Claims{}, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return Claims{}, errors.New("token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims format")
	}

	userID, err := extractUserID(mapClaims)
	if err != nil {
		return Claims{}, err
	}

	role, err := extractRole(mapClaims)
	if err != nil {
		return Claims{}, err
	}

	return Claims{UserID: userID, Role: role}, nil
}

// extractUserID accepts "uid" either as a numeric string or a JSON number
func extractUserID(claims jwt.MapClaims) (uint, error) {
	switch uid := claims["uid"].(type) {
	case string:
		parsed, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid uid claim format: must be a numeric string, got: %s", uid)
		}
		if parsed == 0 {
			return 0, errors.New("invalid user identifier: cannot be zero")
		}
		return uint(parsed), nil
	case float64:
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		return uint(uid), nil
	default:
		return 0, errors.New("token missing required 'uid' claim")
	}
}

// extractRole requires an explicit, known role claim
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", errors.New("token missing required 'role' claim")
	}

	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", role)
	}
}
