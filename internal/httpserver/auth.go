package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/logging"
	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/mykafka"
	"github.com/Rky1/sweet_shop/internal/service"
	"github.com/Rky1/sweet_shop/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *mykafka.Producer
}

type authPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, mykafka.TopicUserEvents, event["email"].(string), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	res, err := h.Svc.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return respondError(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrEmailTaken):
			return respondError(c, http.StatusBadRequest, "User with this email already exists")
		default:
			l.Error("register_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Server error while registering user")
		}
	}

	h.publish(c, map[string]any{
		"type":   "user_registered",
		"userID": res.User.ID,
		"email":  res.User.Email,
	})

	return respondData(c, http.StatusCreated, authPayload{Token: res.Token, User: res.User})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return respondError(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			return respondError(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Server error while logging in")
		}
	}

	h.publish(c, map[string]any{
		"type":   "user_logged_in",
		"userID": res.User.ID,
		"email":  res.User.Email,
	})

	return respondData(c, http.StatusOK, authPayload{Token: res.Token, User: res.User})
}
