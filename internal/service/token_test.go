package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rky1/sweet_shop/internal/models"
)

func TestTokenService_SignVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokens()
	userID := uuid.New()

	token, err := svc.Sign(userID, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotRole, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, models.RoleAdmin, gotRole)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestTokens().Sign(uuid.New(), models.RoleUser)
	require.NoError(t, err)

	other := &TokenService{Secret: []byte("another-secret")}
	_, _, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestTokens()
	claims := AccessClaims{
		Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.Secret)
	require.NoError(t, err)

	_, _, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	t.Parallel()

	svc := newTestTokens()
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, _, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenService_Sign_SevenDayExpiry(t *testing.T) {
	t.Parallel()

	svc := newTestTokens()
	token, err := svc.Sign(uuid.New(), models.RoleUser)
	require.NoError(t, err)

	var claims AccessClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		return svc.Secret, nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}
