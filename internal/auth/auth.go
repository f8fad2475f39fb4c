package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

const TokenTypeBearer = "bearer"

// Credentials is what the credential store knows about a login identity.
type Credentials struct {
	UserID       int64
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	IsActive     bool
}

// ToContextUser projects credentials onto the request context user.
func (c *Credentials) ToContextUser() *internal.User {
	return &internal.User{
		ID:    c.UserID,
		Email: c.Email,
		Name:  c.Name,
		Role:  string(c.Role),
	}
}

// CredentialStore looks up login identities by email.
type CredentialStore interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
}

type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Claims carries the caller identity. The subject is the user's email.
type Claims struct {
	Role   Role  `json:"role"`
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and verifies access tokens.
type TokenGenerator interface {
	Generate(creds *Credentials) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
		now:    time.Now,
	}
}

// Generate signs an HS256 token for creds.
func (j *JWTTokenGenerator) Generate(creds *Credentials) (string, error) {
	issuedAt := j.now()
	claims := &Claims{
		Role:   creds.Role,
		UserID: creds.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   creds.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.Secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry. A token without a subject is
// rejected like a forged one.
func (j *JWTTokenGenerator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken.WithCause(err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}
