package auth

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/models"
	"github.com/FACorreiaa/travelmind/internal/app/observability/metrics"
)

const (
	tokenTypeBearer = "bearer"
	// ConfirmationRequiredToken stands in for the access token when sign-up
	// succeeded but the provider is waiting on email confirmation.
	ConfirmationRequiredToken = "email-confirmation-required"
	defaultFullName           = "User"
)

var _ AuthService = (*AuthServiceImpl)(nil)

// AuthService defines the identity operations exposed over HTTP.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.Token, error)
	// Verify resolves a bearer token to a user. It satisfies middleware.TokenVerifier.
	Verify(ctx context.Context, token string) (*models.User, error)
}

type AuthServiceImpl struct {
	repo     AuthRepo
	verifier *JWTVerifier
	logger   *zap.Logger
}

// NewAuthService wires the identity provider. repo may be nil when the
// provider is not configured; verifier may be nil to always verify remotely.
func NewAuthService(repo AuthRepo, verifier *JWTVerifier, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{repo: repo, verifier: verifier, logger: logger}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req models.RegisterRequest) (*models.Token, error) {
	l := s.logger.With(zap.String("method", "Register"), zap.String("email", req.Email))
	ctx, span := otel.Tracer("AuthService").Start(ctx, "AuthService.Register", trace.WithAttributes(
		attribute.String("email", req.Email),
	))
	defer span.End()

	if s.repo == nil {
		s.record(ctx, "register", models.ErrIdentityUnavailable)
		return nil, models.ErrIdentityUnavailable
	}

	session, err := s.repo.SignUp(ctx, req.Email, req.Password, req.FullName)
	s.record(ctx, "register", err)
	if err != nil {
		l.Warn("Registration failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "registration failed")
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if session == nil {
		l.Info("Registration pending email confirmation")
		span.SetStatus(codes.Ok, "confirmation required")
		return &models.Token{AccessToken: ConfirmationRequiredToken, TokenType: tokenTypeBearer}, nil
	}

	l.Info("Registration successful")
	span.SetStatus(codes.Ok, "user registered")
	return &models.Token{AccessToken: session.AccessToken, TokenType: tokenTypeBearer}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req models.LoginRequest) (*models.Token, error) {
	l := s.logger.With(zap.String("method", "Login"), zap.String("email", req.Email))
	ctx, span := otel.Tracer("AuthService").Start(ctx, "AuthService.Login", trace.WithAttributes(
		attribute.String("email", req.Email),
	))
	defer span.End()

	if s.repo == nil {
		s.record(ctx, "login", models.ErrIdentityUnavailable)
		return nil, models.ErrIdentityUnavailable
	}

	session, err := s.repo.SignInWithPassword(ctx, req.Email, req.Password)
	s.record(ctx, "login", err)
	if err != nil {
		l.Warn("Login failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
		return nil, err
	}

	l.Info("Login successful")
	span.SetStatus(codes.Ok, "logged in")
	return &models.Token{AccessToken: session.AccessToken, TokenType: tokenTypeBearer}, nil
}

func (s *AuthServiceImpl) Verify(ctx context.Context, token string) (*models.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "AuthService.Verify", trace.WithAttributes(
		attribute.Bool("local", s.verifier != nil),
	))
	defer span.End()

	user, err := s.verify(ctx, token)
	s.record(ctx, "verify", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token rejected")
		return nil, err
	}
	span.SetStatus(codes.Ok, "token accepted")
	return user, nil
}

func (s *AuthServiceImpl) verify(ctx context.Context, token string) (*models.User, error) {
	if s.verifier != nil {
		claims, err := s.verifier.ValidateToken(token)
		if err != nil {
			return nil, &models.CredentialError{Reason: err}
		}
		return &models.User{
			ID:       claims.Subject,
			Email:    claims.Email,
			FullName: fullName(claims.UserMetadata),
		}, nil
	}

	if s.repo == nil {
		return nil, models.ErrIdentityUnavailable
	}

	identity, err := s.repo.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:       identity.ID,
		Email:    identity.Email,
		FullName: fullName(identity.UserMetadata),
	}, nil
}

func (s *AuthServiceImpl) record(ctx context.Context, op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, models.ErrUnauthenticated):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	metrics.Get().AuthRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}

func fullName(metadata map[string]any) string {
	if name, ok := metadata["full_name"].(string); ok && name != "" {
		return name
	}
	return defaultFullName
}
