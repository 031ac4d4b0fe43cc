package users

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenExpiration is the access token lifetime used when the
// configuration does not set one.
const DefaultTokenExpiration = 2 * time.Hour

// TokenService issues signed, bounded-lifetime access tokens. Verification
// of inbound tokens belongs to the consumers of those tokens, not to this
// pipeline.
type TokenService interface {
	Issue(username, email string) (string, error)
}

// Claims are the identity claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// JWTTokenService implements TokenService with HS256 signed JWTs.
type JWTTokenService struct {
	signingKey []byte
	expiration time.Duration
	issuer     string
	logger     Logger
}

// NewTokenService creates a TokenService from the given configuration.
func NewTokenService(cfg Config, logger Logger) *JWTTokenService {
	if logger == nil {
		logger = defLogger{}
	}

	expiration := time.Duration(cfg.GetTokenExpiration()) * time.Hour
	if expiration <= 0 {
		expiration = DefaultTokenExpiration
	}

	return &JWTTokenService{
		signingKey: []byte(cfg.GetSigningKey()),
		expiration: expiration,
		issuer:     cfg.GetIssuer(),
		logger:     logger,
	}
}

// Issue signs a fresh token for the given subject. Expiry is issued-at plus
// the configured window.
func (ts *JWTTokenService) Issue(username, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiration)),
			ID:        uuid.NewString(),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		ts.logger.Error("TokenService failed to sign token: %v", err)
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
