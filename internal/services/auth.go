package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 10 characters long")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email string) (uuid.UUID, error)
}

// TokenIssuer defines an interface for generating access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (token string, jti string, err error)
}

// SessionWriter registers and revokes token sessions.
type SessionWriter interface {
	Save(ctx context.Context, jti string, userID uuid.UUID) error
	Revoke(ctx context.Context, jti string) error
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Token    string
	UserID   uuid.UUID
	Username string
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenIssuer
	sessions SessionWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, sessions SessionWriter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Register creates a new user and issues a token for the new identity.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (*AuthResult, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to check username exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if len(password) < models.MinPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.issue(ctx, userID, username)
}

// Login authenticates a user and issues a token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user.UserID, user.Username)
}

// Logout revokes the session behind the presented token.
func (svc *AuthService) Logout(ctx context.Context, jti string) error {
	if err := svc.sessions.Revoke(ctx, jti); err != nil {
		logger.Log.Errorw("failed to revoke session", "jti", jti, "err", err)
		return err
	}
	return nil
}

// CurrentUser returns the account behind the resolved identity.
func (svc *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

func (svc *AuthService) issue(ctx context.Context, userID uuid.UUID, username string) (*AuthResult, error) {
	token, jti, err := svc.tokens.Generate(ctx, userID, username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, err
	}

	if err := svc.sessions.Save(ctx, jti, userID); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return nil, err
	}

	return &AuthResult{Token: token, UserID: userID, Username: username}, nil
}
