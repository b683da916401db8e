// Package identity handles login, registration and logout against the
// hospital API, and the persisted session that results.
package identity

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hms/console/internal/platform/auth"
	"github.com/hms/console/internal/platform/forms"
	"github.com/hms/console/internal/platform/gateway"
	"github.com/hms/console/internal/platform/notification"
)

// LoginForm carries the credentials of a login attempt.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs the client-side checks that block submission.
func (f LoginForm) Validate() forms.Errors {
	errs := forms.Errors{}
	if strings.TrimSpace(f.Email) == "" {
		errs.Add("email", "Email is required")
	} else if !forms.ValidEmail(f.Email) {
		errs.Add("email", "Invalid email address")
	}
	if f.Password == "" {
		errs.Add("password", "Password is required")
	}
	return errs
}

// RegisterForm carries a new account request. An empty Role defaults to
// staff before submission.
type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

var validRoles = map[string]bool{
	auth.RoleAdmin: true, auth.RoleDoctor: true, auth.RoleStaff: true,
}

// Validate runs the client-side checks that block submission.
func (f RegisterForm) Validate() forms.Errors {
	errs := forms.Errors{}
	if len(strings.TrimSpace(f.Username)) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs.Add("email", "Email is required")
	} else if !forms.ValidEmail(f.Email) {
		errs.Add("email", "Invalid email address")
	}
	if len(f.Password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	} else if len(f.Password) > 72 {
		errs.Add("password", "Password must be at most 72 characters")
	}
	if f.Role != "" && !validRoles[f.Role] {
		errs.Add("role", "Invalid role")
	}
	return errs
}

// authResponse is the API shape of a successful login or registration.
type authResponse struct {
	AccessToken string        `json:"access_token"`
	User        auth.Identity `json:"user"`
}

// Service owns the authentication flows.
type Service struct {
	gw       *gateway.Client
	sessions *auth.Store
	notify   notification.Notifier
	logger   zerolog.Logger
}

func NewService(gw *gateway.Client, sessions *auth.Store, notify notification.Notifier, logger zerolog.Logger) *Service {
	return &Service{gw: gw, sessions: sessions, notify: notify, logger: logger}
}

// Login exchanges credentials for a session. Field errors abort before the
// request; an API failure is reported and returned with no session change.
func (s *Service) Login(ctx context.Context, form LoginForm) (forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return errs, nil
	}

	var resp authResponse
	if err := s.gw.PostJSON(ctx, "/auth/login", form, &resp); err != nil {
		s.logger.Warn().Err(err).Str("email", form.Email).Msg("login failed")
		s.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	if err := s.sessions.Establish(resp.AccessToken, resp.User); err != nil {
		s.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	s.logger.Info().Str("username", resp.User.Username).Msg("session established")
	s.notify.Success("Login successful!")
	return nil, nil
}

// Register creates an account and establishes the returned session. An
// empty role defaults to staff.
func (s *Service) Register(ctx context.Context, form RegisterForm) (forms.Errors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return errs, nil
	}
	if form.Role == "" {
		form.Role = auth.RoleStaff
	}

	var resp authResponse
	if err := s.gw.PostJSON(ctx, "/auth/register", form, &resp); err != nil {
		s.logger.Warn().Err(err).Str("email", form.Email).Msg("registration failed")
		s.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	if err := s.sessions.Establish(resp.AccessToken, resp.User); err != nil {
		s.notify.Error(gateway.ErrorMessage(err))
		return nil, err
	}
	s.logger.Info().Str("username", resp.User.Username).Msg("account registered")
	s.notify.Success("Registration successful!")
	return nil, nil
}

// Logout discards the persisted session. Logging out while logged out is
// not an error.
func (s *Service) Logout() {
	s.sessions.Clear()
	s.notify.Success("Logged out successfully")
}
