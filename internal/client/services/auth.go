package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

// Session is the part of session.Store the auth flows write to.
type Session interface {
	Token(ctx context.Context) string
	SetToken(ctx context.Context, token string)
	IsAdmin(ctx context.Context) bool
	SetIsAdmin(ctx context.Context, isAdmin bool)
	MobileNumber(ctx context.Context) string
	SetMobileNumber(ctx context.Context, number string)
	Clear(ctx context.Context)
}

// AuthService defines the authentication flows of the storefront.
//
// Contract:
//   - Login, LoginWithMobile: on success store the returned token and the
//     admin flag (missing isAdmin means false).
//   - Signup: stores a token only if the backend returned one.
//   - Logout: clears the whole session; there is no server call.
//   - IsAuthenticated, IsAdmin, MobileNumber: read the session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	LoginWithMobile(ctx context.Context, mobileNumber string) (*models.AuthResponse, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	MobileNumber(ctx context.Context) string
}

type authService struct {
	client  client.Client
	session Session
}

func NewAuthService(client client.Client, session Session) AuthService {
	return &authService{client: client, session: session}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	resp, err := a.post(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	a.saveSession(ctx, resp)
	return resp, nil
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	resp, err := a.post(ctx, "/auth/signup", req)
	if err != nil {
		return nil, fmt.Errorf("signup error: %w", err)
	}
	a.saveSession(ctx, resp)
	return resp, nil
}

// LoginWithMobile logs in by mobile number and remembers the number for
// checkout prefill.
func (a *authService) LoginWithMobile(ctx context.Context, mobileNumber string) (*models.AuthResponse, error) {
	resp, err := a.post(ctx, "/auth/login/mobile", models.MobileLoginRequest{MobileNumber: mobileNumber})
	if err != nil {
		return nil, fmt.Errorf("mobile login error: %w", err)
	}
	if a.saveSession(ctx, resp) {
		a.session.SetMobileNumber(ctx, mobileNumber)
	}
	return resp, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Clear(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.session.Token(ctx) != ""
}

func (a *authService) IsAdmin(ctx context.Context) bool {
	return a.IsAuthenticated(ctx) && a.session.IsAdmin(ctx)
}

func (a *authService) MobileNumber(ctx context.Context) string {
	return a.session.MobileNumber(ctx)
}

func (a *authService) post(ctx context.Context, path string, body any) (*models.AuthResponse, error) {
	raw, err := a.client.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	resp, err := decode[models.AuthResponse](raw)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// saveSession stores the token and admin flag carried by resp and reports
// whether there was a token.
func (a *authService) saveSession(ctx context.Context, resp *models.AuthResponse) bool {
	token := resp.Token()
	if token == "" {
		return false
	}
	a.session.SetToken(ctx, token)
	a.session.SetIsAdmin(ctx, resp.Admin())
	return true
}
