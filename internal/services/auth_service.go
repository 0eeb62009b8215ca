package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/auth"
	"github.com/uptraa/platform/internal/mail"
	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/models"
	"github.com/uptraa/platform/internal/repository"
	"github.com/uptraa/platform/internal/validation"
	appErr "github.com/uptraa/platform/pkg/errors"
	"github.com/uptraa/platform/pkg/logger"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidOrExpired   = "Invalid or expired token"
	msgInvalidToken       = "Invalid token"
	msgEmailTaken         = "User with this email already exists"
)

// ResetTokenStore keeps the outstanding reset token per email.
type ResetTokenStore interface {
	Save(ctx context.Context, email, token string, ttl time.Duration) error
	// Consume deletes the stored token for email only if it equals token.
	Consume(ctx context.Context, email, token string) (bool, error)
}

// MailPublisher hands an email to the mail queue.
type MailPublisher interface {
	Publish(ctx context.Context, msg mail.Message) error
}

type AuthService interface {
	Register(ctx context.Context, in validation.RegisterInput, resume *media.File) (*models.Profile, string, error)
	Login(ctx context.Context, in validation.LoginInput) (*models.Profile, string, error)
	ForgotPassword(ctx context.Context, in validation.ForgotPasswordInput) error
	ResetPassword(ctx context.Context, in validation.ResetPasswordInput) error
}

type authService struct {
	users       repository.UserRepository
	tokens      *auth.TokenManager
	resets      ResetTokenStore
	mailer      MailPublisher
	uploader    media.Uploader
	frontendURL string
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, resets ResetTokenStore, mailer MailPublisher, uploader media.Uploader, frontendURL string) AuthService {
	return &authService{
		users:       users,
		tokens:      tokens,
		resets:      resets,
		mailer:      mailer,
		uploader:    uploader,
		frontendURL: frontendURL,
	}
}

func (s *authService) Register(ctx context.Context, in validation.RegisterInput, resume *media.File) (*models.Profile, string, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", appErr.Conflict(msgEmailTaken)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: &hash,
		PhoneNumber:  in.PhoneNumber,
		Role:         models.Role(in.Role),
	}

	if user.Role == models.RoleJobseeker {
		if resume == nil {
			return nil, "", appErr.Invalid("Resume is required")
		}
		if len(resume.Content) == 0 {
			return nil, "", appErr.Invalid("Invalid file")
		}
		asset, err := s.uploader.Upload(ctx, *resume, "")
		if err != nil {
			return nil, "", err
		}
		user.Bio = in.Bio
		user.Resume = &asset.URL
		user.ResumePublicID = &asset.PublicID
	}

	if err := s.users.Create(ctx, user); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, "", appErr.Conflict(msgEmailTaken)
		}
		return nil, "", err
	}

	token, err := s.tokens.IssueSession(user.ID.String())
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}

	logger.L().Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))
	p := models.ProfileOf(user)
	return &p, token, nil
}

func (s *authService) Login(ctx context.Context, in validation.LoginInput) (*models.Profile, string, error) {
	acc, err := s.users.FindAccountByEmail(ctx, in.Email)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, "", appErr.Unauthorized(msgInvalidCredentials)
		}
		return nil, "", err
	}
	if acc.PasswordHash == nil || !auth.CheckPassword(*acc.PasswordHash, in.Password) {
		return nil, "", appErr.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.tokens.IssueSession(acc.ID.String())
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}
	return &acc.Profile, token, nil
}

// ForgotPassword queues a reset email when the account exists. Callers get
// the same outcome whether or not it does.
func (s *authService) ForgotPassword(ctx context.Context, in validation.ForgotPasswordInput) error {
	acc, err := s.users.FindAccountByEmail(ctx, in.Email)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil
		}
		return err
	}

	token, err := s.tokens.IssueReset(acc.Email)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "issue reset token failed")
	}
	if err := s.resets.Save(ctx, acc.Email, token, s.tokens.ResetTTL()); err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "store reset token failed")
	}

	html, err := mail.ForgotPasswordEmail(acc.Name, mail.ResetURL(s.frontendURL, token))
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "render reset email failed")
	}

	msg := mail.Message{To: acc.Email, Subject: mail.ForgotPasswordSubject, HTML: html}
	if err := s.mailer.Publish(ctx, msg); err != nil {
		logger.L().Error("failed to publish reset email", zap.String("to", acc.Email), zap.Error(err))
	}
	return nil
}

// ResetPassword consumes the stored reset token and sets the new password.
func (s *authService) ResetPassword(ctx context.Context, in validation.ResetPasswordInput) error {
	claims, err := s.tokens.VerifyReset(in.Token)
	if err != nil {
		return appErr.Unauthorized(msgInvalidOrExpired)
	}

	ok, err := s.resets.Consume(ctx, claims.Email, in.Token)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "consume reset token failed")
	}
	if !ok {
		return appErr.Unauthorized(msgInvalidToken)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}
	if err := s.users.UpdatePassword(ctx, claims.Email, hash); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return appErr.Unauthorized(msgInvalidToken)
		}
		return err
	}

	logger.L().Info("password reset", zap.String("email", claims.Email))
	return nil
}
