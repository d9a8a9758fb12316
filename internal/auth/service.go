package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/paypointhq/pos-register/pkg/auth"
	"github.com/paypointhq/pos-register/pkg/auth/session"
	"github.com/paypointhq/pos-register/pkg/config"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/upstream"
)

type credentialVerifier interface {
	Login(ctx context.Context, req upstream.LoginRequest) (*upstream.User, error)
	GetUser(ctx context.Context, id int64) (*upstream.User, error)
}

type sessionManager interface {
	Open(ctx context.Context, accessID, operatorID string) error
	Revoke(ctx context.Context, accessID string) error
}

// Session is the result of a successful login.
type Session struct {
	Token    string         `json:"token"`
	Operator *upstream.User `json:"operator"`
}

// Service authenticates operators against the platform and manages the
// register's own JWT sessions.
type Service interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Me(ctx context.Context, operatorID string) (*upstream.User, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	verifier credentialVerifier
	sessions sessionManager
	jwtCfg   config.JWTConfig
	logg     *logger.Logger
	clock    func() time.Time
}

// NewService builds the auth service.
func NewService(verifier credentialVerifier, sessions sessionManager, jwtCfg config.JWTConfig, logg *logger.Logger) (Service, error) {
	if verifier == nil {
		return nil, fmt.Errorf("credential verifier required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		verifier: verifier,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		logg:     logg,
		clock:    time.Now,
	}, nil
}

// Login verifies credentials upstream, then mints a local access token
// bound to a redis session so logout can revoke it.
func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.verifier.Login(ctx, upstream.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if !user.Status {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account is disabled")
	}
	if !user.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("unknown role %q", user.Role))
	}

	operatorID := strconv.FormatInt(user.ID, 10)
	accessID := session.NewAccessID()
	token, err := auth.MintAccessToken(s.jwtCfg, s.clock(), auth.AccessTokenPayload{
		OperatorID: operatorID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		JTI:        accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	if err := s.sessions.Open(ctx, accessID, operatorID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open session")
	}

	s.logg.Info(s.logg.WithOperatorID(ctx, operatorID), "operator logged in")
	return &Session{Token: token, Operator: user}, nil
}

// Me returns the operator's current platform profile.
func (s *service) Me(ctx context.Context, operatorID string) (*upstream.User, error) {
	id, err := strconv.ParseInt(operatorID, 10, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid operator id")
	}
	return s.verifier.GetUser(ctx, id)
}

// Logout revokes the session behind the access token.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}
