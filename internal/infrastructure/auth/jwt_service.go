package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
)

const (
	// DefaultTokenTTL applies when no expiry override is given.
	DefaultTokenTTL = 7 * 24 * time.Hour

	minSecretLength = 32
)

// ErrWeakSecret is returned at construction for secrets shorter than 32
// characters.
var ErrWeakSecret = errors.New("jwt secret must be at least 32 characters long")

// TokenPayload is the identity carried inside a bearer token. Only
// these fields survive validation; anything else in the token is
// ignored.
type TokenPayload struct {
	UserID string
	Email  string
	Role   entity.UserRole
}

type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidationStatus is the outcome class of a token validation.
type ValidationStatus int

const (
	TokenValid ValidationStatus = iota
	// TokenEmpty: blank token string.
	TokenEmpty
	// TokenExpired: signature valid but past expiry.
	TokenExpired
	// TokenInvalid: bad signature, malformed structure, wrong issuer,
	// or missing required payload fields.
	TokenInvalid
)

// ValidationResult is the fail-closed outcome of Validate. Payload is
// set only when Status is TokenValid.
type ValidationResult struct {
	Status  ValidationStatus
	Payload *TokenPayload
}

func (r ValidationResult) Valid() bool { return r.Status == TokenValid }

// JWTService signs and verifies HS256 bearer tokens. It is stateless
// apart from the secret and is safe for concurrent use.
type JWTService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration
}

// NewJWTService fails fast on a weak secret. Tokens are bound to the
// issuer: validation rejects tokens minted under a different issuer
// even when the secret matches.
func NewJWTService(secret, issuer string, defaultTTL time.Duration) (*JWTService, error) {
	if len(secret) < minSecretLength {
		return nil, ErrWeakSecret
	}
	if issuer == "" {
		issuer = "go-api-boilerplate"
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), issuer: issuer, defaultTTL: defaultTTL}, nil
}

// GenerateOptions overrides per-token settings.
type GenerateOptions struct {
	// ExpiresIn replaces the default TTL when non-zero.
	ExpiresIn time.Duration
}

// Generate signs a compact token embedding the payload, the issuer and
// issued-at/expiry claims.
func (s *JWTService) Generate(p TokenPayload, opts *GenerateOptions) (string, error) {
	ttl := s.defaultTTL
	if opts != nil && opts.ExpiresIn != 0 {
		ttl = opts.ExpiresIn
	}
	now := time.Now()
	claims := &tokenClaims{
		UserID: p.UserID,
		Email:  p.Email,
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies a presented token. It never returns an error: the
// outcome is one of the four statuses, and the library's own error
// taxonomy does not leak past this method.
func (s *JWTService) Validate(token string) ValidationResult {
	if strings.TrimSpace(token) == "" {
		return ValidationResult{Status: TokenEmpty}
	}
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		// The parser joins claim failures, so an expired token from a
		// wrong issuer matches both sentinels; the issuer check wins.
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return ValidationResult{Status: TokenInvalid}
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ValidationResult{Status: TokenExpired}
		}
		return ValidationResult{Status: TokenInvalid}
	}
	if !tkn.Valid || claims.UserID == "" || claims.Email == "" || claims.Role == "" {
		return ValidationResult{Status: TokenInvalid}
	}
	return ValidationResult{
		Status: TokenValid,
		Payload: &TokenPayload{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   entity.UserRole(claims.Role),
		},
	}
}

// Decode parses the token structure WITHOUT verifying the signature.
// Diagnostics only; never use the result for authorization decisions.
func (s *JWTService) Decode(token string) *TokenPayload {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return &TokenPayload{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   entity.UserRole(claims.Role),
	}
}
