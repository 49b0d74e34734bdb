package services

import (
	"context"
	"time"

	"swiftride/internal/models"
	"swiftride/internal/platform"
	"swiftride/internal/session"
	"swiftride/internal/utils"
	"swiftride/internal/validators"
	"swiftride/pkg/logger"
)

type AuthService interface {
	// Account lifecycle
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string)

	// Session-backed account access
	CurrentUser(ctx context.Context, sess *session.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, sess *session.Session, update models.UserUpdate) (*models.User, error)

	// Password recovery
	ForgotPassword(ctx context.Context, email string) (*platform.OTPResult, error)
	VerifyOTP(ctx context.Context, email, otp string) (*platform.OTPResult, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (*platform.OTPResult, error)
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	City     string `json:"city" validate:"required"`
	CNIC     string `json:"cnic" validate:"required,cnic"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is what the client keeps after register/login: an opaque session
// id, never the platform token.
type AuthResult struct {
	SessionID string      `json:"session_id"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type authAPI interface {
	Register(ctx context.Context, req *platform.RegisterRequest) (*platform.Credentials, error)
	Login(ctx context.Context, req *platform.LoginRequest) (*platform.Credentials, error)
	CurrentUser(ctx context.Context, token string) (*models.RawUser, error)
	UpdateProfile(ctx context.Context, token string, req *platform.ProfileUpdateRequest) (*models.RawUser, error)
	ForgotPassword(ctx context.Context, email string) (*platform.OTPResult, error)
	VerifyOTP(ctx context.Context, email, otp string) (*platform.OTPResult, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (*platform.OTPResult, error)
}

type authService struct {
	api      authAPI
	sessions *session.Store
	logger   *logger.Logger
}

func NewAuthService(api authAPI, sessions *session.Store, log *logger.Logger) AuthService {
	return &authService{
		api:      api,
		sessions: sessions,
		logger:   log,
	}
}

// Register creates the platform account and immediately opens a session for
// it. The CNIC is reduced to bare digits before submission; the dashed form
// is display-only.
func (s *authService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	if errs := validators.ValidateStruct(input); len(errs) > 0 {
		return nil, errs
	}

	creds, err := s.api.Register(ctx, &platform.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		City:     input.City,
		CNIC:     utils.NormalizeCNIC(input.CNIC),
	})
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, creds)
}

func (s *authService) Login(ctx context.Context, input *LoginInput) (*AuthResult, error) {
	if errs := validators.ValidateStruct(input); len(errs) > 0 {
		return nil, errs
	}

	creds, err := s.api.Login(ctx, &platform.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, creds)
}

func (s *authService) openSession(ctx context.Context, creds *platform.Credentials) (*AuthResult, error) {
	sess, err := s.sessions.Login(ctx, creds.Token, creds.User.Normalize())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		SessionID: sess.ID,
		User:      sess.User,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Logout(ctx, sessionID)
}

// CurrentUser re-reads the account from the platform and refreshes the
// session copy, so a stale local record self-corrects on the next visit.
func (s *authService) CurrentUser(ctx context.Context, sess *session.Session) (*models.User, error) {
	raw, err := s.api.CurrentUser(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	user := raw.Normalize()
	if updated, err := s.sessions.ReplaceUser(ctx, sess.ID, user); err == nil && updated != nil {
		return updated, nil
	}
	return &user, nil
}

// UpdateProfile pushes a partial edit upstream and installs the platform's
// authoritative record in the session.
func (s *authService) UpdateProfile(ctx context.Context, sess *session.Session, update models.UserUpdate) (*models.User, error) {
	if update.CNIC != nil {
		normalized := utils.NormalizeCNIC(*update.CNIC)
		if !utils.IsValidCNIC(normalized) {
			return nil, validators.ValidationErrors{{
				Field:   "CNIC",
				Tag:     "cnic",
				Message: validators.ErrInvalidCNIC.Error(),
			}}
		}
		update.CNIC = &normalized
	}

	raw, err := s.api.UpdateProfile(ctx, sess.Token, &platform.ProfileUpdateRequest{
		Name:   update.Name,
		City:   update.City,
		CNIC:   update.CNIC,
		Gender: update.Gender,
	})
	if err != nil {
		return nil, err
	}

	user := raw.Normalize()
	if replaced, err := s.sessions.ReplaceUser(ctx, sess.ID, user); err == nil && replaced != nil {
		return replaced, nil
	}
	return &user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (*platform.OTPResult, error) {
	if !utils.IsValidEmail(email) {
		return nil, validators.ValidationErrors{{
			Field:   "Email",
			Tag:     "email",
			Message: "Invalid email format",
		}}
	}
	return s.api.ForgotPassword(ctx, email)
}

func (s *authService) VerifyOTP(ctx context.Context, email, otp string) (*platform.OTPResult, error) {
	return s.api.VerifyOTP(ctx, email, otp)
}

func (s *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) (*platform.OTPResult, error) {
	if len(newPassword) < 8 {
		return nil, validators.ValidationErrors{{
			Field:   "Password",
			Tag:     "min",
			Message: "Password must be at least 8 characters",
		}}
	}
	return s.api.ResetPassword(ctx, email, otp, newPassword)
}
