package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 30 * time.Minute

// Claims identify the bearer of an access token.
type Claims struct {
	Subject string
	Role    entities.Role
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *JWTService) TTL() time.Duration {
	return j.ttl
}

// GenerateToken issues a token with the configured lifetime.
func (j *JWTService) GenerateToken(claims Claims) (string, error) {
	return j.IssueToken(claims, j.ttl)
}

func (j *JWTService) IssueToken(claims Claims, ttl time.Duration) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken fails with domain.ErrUnauthenticated for expired, malformed
// or forged tokens.
func (j *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.Unauthenticated("token has expired")
		}
		return nil, domain.Unauthenticated("could not validate credentials")
	}
	if parsed.Subject == "" {
		return nil, domain.Unauthenticated("could not validate credentials")
	}

	return &Claims{
		Subject: parsed.Subject,
		Role:    entities.Role(parsed.Role),
	}, nil
}
