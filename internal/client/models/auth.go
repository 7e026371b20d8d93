package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

// MobileLoginRequest is the body of POST /auth/login/mobile.
type MobileLoginRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

// AuthResponse is what the auth endpoints return. The backend has shipped
// both spellings of the token field.
type AuthResponse struct {
	AccessToken      string `json:"accessToken,omitempty"`
	AccessTokenSnake string `json:"access_token,omitempty"`
	IsAdmin          *bool  `json:"isAdmin,omitempty"`
}

// Token returns accessToken, falling back to access_token.
func (r AuthResponse) Token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.AccessTokenSnake
}

// Admin reports the isAdmin field; a missing field means false.
func (r AuthResponse) Admin() bool {
	return r.IsAdmin != nil && *r.IsAdmin
}
