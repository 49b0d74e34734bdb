package platform

import (
	"context"
	"net/http"

	"swiftride/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city"`
	CNIC     string `json:"cnic"` // digits only, dashes stripped before submission
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is what the platform hands back on register/login.
type Credentials struct {
	User  models.RawUser `json:"user"`
	Token string         `json:"token"`
}

type ProfileUpdateRequest struct {
	Name   *string `json:"name,omitempty"`
	City   *string `json:"city,omitempty"`
	CNIC   *string `json:"cnic,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// OTPResult is the forgot-password / verify-otp / reset-password outcome.
// Token is only present after a successful OTP verification.
type OTPResult struct {
	Message string
	Token   string
}

func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*Credentials, error) {
	var creds Credentials
	if _, err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (c *Client) Login(ctx context.Context, req *LoginRequest) (*Credentials, error) {
	var creds Credentials
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// CurrentUser fetches the account behind a token. The platform nests the
// record under a "user" key.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.RawUser, error) {
	var data struct {
		User models.RawUser `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req *ProfileUpdateRequest) (*models.RawUser, error) {
	var data struct {
		User models.RawUser `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodPut, "/auth/profile", token, nil, req, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*OTPResult, error) {
	body := map[string]string{"email": email}
	env, err := c.do(ctx, http.MethodPost, "/auth/forgot-password", "", nil, body, nil)
	if err != nil {
		return nil, err
	}
	return &OTPResult{Message: env.Message}, nil
}

// VerifyOTP checks a password-reset code. The reset token, when issued,
// rides at the top level of the envelope rather than under data.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*OTPResult, error) {
	body := map[string]string{"email": email, "otp": otp}
	env, err := c.do(ctx, http.MethodPost, "/auth/verify-otp", "", nil, body, nil)
	if err != nil {
		return nil, err
	}
	return &OTPResult{Message: env.Message, Token: env.Token}, nil
}

func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) (*OTPResult, error) {
	body := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	env, err := c.do(ctx, http.MethodPost, "/auth/reset-password", "", nil, body, nil)
	if err != nil {
		return nil, err
	}
	return &OTPResult{Message: env.Message}, nil
}
