package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonwraymond/authops/credential"
)

// DefaultTTL is the token lifetime when Config.TTL is zero.
const DefaultTTL = 15 * time.Minute

// TokenType is the grant type issued at login.
const TokenType = "bearer"

// Claims are the statements embedded in an issued token. The subject
// registered claim carries the username.
type Claims struct {
	// Role is the role the identity held at issue time.
	Role credential.Role `json:"role"`

	jwt.RegisteredClaims
}

// Username returns the subject the token was issued to.
func (c *Claims) Username() string {
	return c.Subject
}

// Grant is the result of a successful login.
type Grant struct {
	// AccessToken is the signed compact token string.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresAt is when the token stops validating.
	ExpiresAt time.Time `json:"-"`
}

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret []byte

	// TTL is the token lifetime.
	// Default: 15 minutes
	TTL time.Duration

	// Issuer is set as the iss claim when non-empty, and enforced
	// during validation.
	Issuer string

	// Now overrides the clock. Used in tests.
	// Default: time.Now
	Now func() time.Time
}

// Service signs and validates bearer tokens with a fixed secret and
// lifetime. Safe for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewService creates a token service.
// Returns ErrMissingSecret if config.Secret is empty.
func NewService(config Config) (*Service, error) {
	if len(config.Secret) == 0 {
		return nil, ErrMissingSecret
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Service{
		secret: config.Secret,
		ttl:    config.TTL,
		issuer: config.Issuer,
		now:    config.Now,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a new token for the identity. The subject claim is the
// username and the role claim is the role held at issue time.
func (s *Service) Issue(identity *credential.Identity) (*Grant, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("token: sign: %w", err)
	}

	return &Grant{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt,
	}, nil
}

// Validate parses and verifies a token string and returns its claims.
//
// It distinguishes two failures: ErrExpired for tokens that verified
// but whose lifetime has passed (strictly: valid only while
// now < expiry), and ErrInvalid for everything else, including bad
// signatures, tampered payloads, and tokens signed with a different
// method.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	if claims.Subject == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}

func (s *Service) keyFunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}
