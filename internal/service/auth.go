package service

import (
	"context"
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/Rky1/sweet_shop/internal/hash"
	"github.com/Rky1/sweet_shop/internal/logging"
	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/repo"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *TokenService
}

type AuthResult struct {
	User  *models.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	var problems []string
	if username == "" {
		problems = append(problems, "Username is required")
	}
	if email == "" {
		problems = append(problems, "Email is required")
	} else if !emailRe.MatchString(email) {
		problems = append(problems, "Please provide a valid email")
	}
	if password == "" {
		problems = append(problems, "Password is required")
	} else if len(password) < 6 {
		problems = append(problems, "Password must be at least 6 characters long")
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register_error", "status", 400, "reason", "email taken", "email", email)
			return nil, ErrEmailTaken
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	token, err := s.Tokens.Sign(user.ID, user.Role)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("register_success", "userID", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	var problems []string
	if email == "" {
		problems = append(problems, "Email is required")
	}
	if password == "" {
		problems = append(problems, "Password is required")
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	// Unknown email and wrong password collapse into one error so a
	// caller cannot probe which addresses are registered.
	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401)
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "status", 500, "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401)
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Sign(user.ID, user.Role)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_success", "userID", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}
