package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

var _ AuthRepo = (*SupabaseAuthRepo)(nil)

// AuthRepo is the hosted identity provider. Accounts and sessions live
// there; nothing is stored locally.
type AuthRepo interface {
	// GetUser resolves an access token to its account.
	GetUser(ctx context.Context, accessToken string) (*IdentityUser, error)
	// SignUp creates an account. The session is nil when the provider
	// requires email confirmation first.
	SignUp(ctx context.Context, email, password, fullName string) (*Session, error)
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
}

type IdentityUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type Session struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	RefreshToken string        `json:"refresh_token"`
	User         *IdentityUser `json:"user,omitempty"`
}

// providerError covers the error shapes GoTrue has used across versions.
type providerError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Err              string `json:"error"`
}

func (e providerError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Err, e.ErrorCode} {
		if s != "" {
			return s
		}
	}
	return ""
}

// SupabaseAuthRepo talks to the Supabase GoTrue REST API with the project's anon key.
type SupabaseAuthRepo struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewSupabaseAuthRepo(baseURL, anonKey string, logger *zap.Logger) *SupabaseAuthRepo {
	return &SupabaseAuthRepo{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (r *SupabaseAuthRepo) GetUser(ctx context.Context, accessToken string) (*IdentityUser, error) {
	var user IdentityUser
	if err := r.do(ctx, "GetUser", http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	if user.Email == "" && user.ID == "" {
		return nil, &models.CredentialError{Reason: errors.New("empty user returned")}
	}
	return &user, nil
}

func (r *SupabaseAuthRepo) SignUp(ctx context.Context, email, password, fullName string) (*Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}

	var session Session
	if err := r.do(ctx, "SignUp", http.MethodPost, "/auth/v1/signup", "", body, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, nil
	}
	return &session, nil
}

func (r *SupabaseAuthRepo) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	path := "/auth/v1/token?" + url.Values{"grant_type": {"password"}}.Encode()

	var session Session
	if err := r.do(ctx, "SignInWithPassword", http.MethodPost, path, "", body, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, &models.CredentialError{Reason: errors.New("no session returned")}
	}
	return &session, nil
}

func (r *SupabaseAuthRepo) do(ctx context.Context, op, method, path, bearer string, in, out any) error {
	ctx, span := otel.Tracer("SupabaseAuthRepo").Start(ctx, "SupabaseAuthRepo."+op, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	))
	defer span.End()

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("apikey", r.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+r.anonKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "identity provider unreachable")
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		var perr providerError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		_ = json.Unmarshal(raw, &perr)
		msg := perr.text()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		span.SetStatus(codes.Error, msg)
		r.logger.Debug("Identity provider rejected request",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return &models.CredentialError{Reason: errors.New(msg)}
		}
		return errors.New(msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	span.SetStatus(codes.Ok, "ok")
	return nil
}
