package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rky1/sweet_shop/internal/models"
)

func newTestAuthService(t *testing.T) *AuthService {
	return &AuthService{Repo: newTestRepo(t), Tokens: newTestTokens()}
}

func TestAuthService_Register_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	res, err := svc.Register(context.Background(), "testuser", "test@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "testuser", res.User.Username)
	assert.Equal(t, "test@example.com", res.User.Email)
	assert.Equal(t, models.RoleUser, res.User.Role)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "password123", res.User.PasswordHash)

	gotID, gotRole, err := svc.Tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, gotID)
	assert.Equal(t, models.RoleUser, gotRole)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantMsg  string
	}{
		{name: "missing username", username: "", email: "a@b.com", password: "secret123", wantMsg: "Username is required"},
		{name: "missing email", username: "u", email: "", password: "secret123", wantMsg: "Email is required"},
		{name: "malformed email", username: "u", email: "invalid-email", password: "secret123", wantMsg: "valid email"},
		{name: "short password", username: "u", email: "a@b.com", password: "123", wantMsg: "at least 6 characters"},
		{name: "missing password", username: "u", email: "a@b.com", password: "", wantMsg: "Password is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			require.Error(t, err)
			assert.Nil(t, res)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Error(), tt.wantMsg)
		})
	}
}

func TestAuthService_Register_AggregatesAllProblems(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	_, err := svc.Register(context.Background(), "", "bad-email", "123")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Problems, 3)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "first", "dup@example.com", "password123")
	require.NoError(t, err)

	// Same email with a different username still conflicts.
	res, err := svc.Register(ctx, "second", "dup@example.com", "password123")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "testuser", "test@example.com", "password123")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "testuser", "test@example.com", "password123")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errNoUser := svc.Login(ctx, "nobody@example.com", "password123")
	_, errBadPass := svc.Login(ctx, "test@example.com", "wrongpassword")

	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, ErrInvalidCredentials)
	assert.Equal(t, errNoUser.Error(), errBadPass.Error())
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	for _, tt := range []struct {
		name, email, password string
	}{
		{name: "missing email", email: "", password: "secret123"},
		{name: "missing password", email: "a@b.com", password: ""},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Nil(t, res)

			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}
