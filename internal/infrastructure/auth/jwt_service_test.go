package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
)

const testSecret = "0123456789abcdef0123456789abcdef" // exactly 32 chars

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(testSecret, "test-issuer", time.Hour)
	require.NoError(t, err)
	return svc
}

func testPayload() TokenPayload {
	return TokenPayload{UserID: "user-1", Email: "john@example.com", Role: entity.RoleUser}
}

func TestNewJWTService_SecretStrengthGate(t *testing.T) {
	_, err := NewJWTService(strings.Repeat("a", 31), "iss", time.Hour)
	require.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewJWTService("", "iss", time.Hour)
	require.ErrorIs(t, err, ErrWeakSecret)

	svc, err := NewJWTService(strings.Repeat("a", 32), "iss", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Generate(testPayload(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	res := svc.Validate(token)
	require.True(t, res.Valid())
	require.NotNil(t, res.Payload)
	assert.Equal(t, "user-1", res.Payload.UserID)
	assert.Equal(t, "john@example.com", res.Payload.Email)
	assert.Equal(t, entity.RoleUser, res.Payload.Role)
}

func TestJWTService_ValidateEmptyToken(t *testing.T) {
	svc := newTestService(t)

	for _, token := range []string{"", "   "} {
		res := svc.Validate(token)
		assert.Equal(t, TokenEmpty, res.Status)
		assert.Nil(t, res.Payload)
	}
}

func TestJWTService_ValidateExpiredToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Generate(testPayload(), &GenerateOptions{ExpiresIn: -time.Minute})
	require.NoError(t, err)

	res := svc.Validate(token)
	assert.Equal(t, TokenExpired, res.Status)
	assert.Nil(t, res.Payload)
}

func TestJWTService_RejectsTokenSignedWithDifferentSecret(t *testing.T) {
	svcA := newTestService(t)
	svcB, err := NewJWTService(strings.Repeat("b", 32), "test-issuer", time.Hour)
	require.NoError(t, err)

	token, err := svcA.Generate(testPayload(), nil)
	require.NoError(t, err)

	res := svcB.Validate(token)
	assert.Equal(t, TokenInvalid, res.Status)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	// Same secret, different issuing context: must not be accepted.
	svcA := newTestService(t)
	svcB, err := NewJWTService(testSecret, "other-issuer", time.Hour)
	require.NoError(t, err)

	token, err := svcA.Generate(testPayload(), nil)
	require.NoError(t, err)

	res := svcB.Validate(token)
	assert.Equal(t, TokenInvalid, res.Status)
}

func TestJWTService_ExpiredTokenFromWrongIssuerIsInvalid(t *testing.T) {
	// Both claim checks fail here; the issuer mismatch must not be
	// masked by the friendlier expired classification.
	svcA := newTestService(t)
	svcB, err := NewJWTService(testSecret, "other-issuer", time.Hour)
	require.NoError(t, err)

	token, err := svcA.Generate(testPayload(), &GenerateOptions{ExpiresIn: -time.Minute})
	require.NoError(t, err)

	res := svcB.Validate(token)
	assert.Equal(t, TokenInvalid, res.Status)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestService(t)

	for _, token := range []string{"garbage", "a.b", "a.b.c"} {
		res := svc.Validate(token)
		assert.Equal(t, TokenInvalid, res.Status, token)
	}
}

func TestJWTService_RejectsMissingPayloadFields(t *testing.T) {
	svc := newTestService(t)

	// Signed with the right secret and issuer but without the
	// required identity fields.
	claims := jwt.MapClaims{
		"iss": "test-issuer",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	res := svc.Validate(token)
	assert.Equal(t, TokenInvalid, res.Status)
}

func TestJWTService_ExpiryOverride(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Generate(testPayload(), &GenerateOptions{ExpiresIn: 30 * time.Minute})
	require.NoError(t, err)

	claims := &tokenClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (30 * time.Minute).Seconds(), remaining.Seconds(), 5)
}

func TestJWTService_DecodeDoesNotVerify(t *testing.T) {
	svcA := newTestService(t)
	svcB, err := NewJWTService(strings.Repeat("b", 32), "test-issuer", time.Hour)
	require.NoError(t, err)

	token, err := svcA.Generate(testPayload(), nil)
	require.NoError(t, err)

	// Decode parses the payload even under the wrong secret.
	p := svcB.Decode(token)
	require.NotNil(t, p)
	assert.Equal(t, "user-1", p.UserID)

	assert.Nil(t, svcB.Decode("not-a-token"))
}
