package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader looks up analyst accounts. Implementations return (nil, nil)
// when no account matches either identifier; a non-nil error always means
// the lookup itself failed, never "not found".
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for analyst accounts.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService manages analyst accounts for the fraud dashboard. Usernames
// and emails are normalized to lower case on every path, so "Analyst" and
// "analyst" are the same account and registration cannot be replayed with a
// re-cased identifier.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// normalizeIdent canonicalizes a username or email for storage and lookup.
func normalizeIdent(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates an analyst account. The username and the email must both
// be unused; the password is bcrypt-hashed before it is persisted.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	username = normalizeIdent(username)
	email = normalizeIdent(email)

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("analyst lookup failed", "username", username, "error", err)
		return err
	}
	// A nil record means both identifiers are free; the reader never
	// reports "not found" through its error.
	if existing != nil {
		logger.Log.Warnw("analyst identifiers taken", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hash), email); err != nil {
		logger.Log.Errorw("failed to persist analyst account", "username", username, "error", err)
		return err
	}

	logger.Log.Infow("analyst registered", "username", username)
	return nil
}

// Login authenticates an analyst by username and returns a signed token
// carrying the analyst id.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = normalizeIdent(username)

	account, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("analyst lookup failed", "username", username, "error", err)
		return "", err
	}
	if account == nil {
		logger.Log.Warnw("login for unknown analyst", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("login with wrong password", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, account.UserID)
	if err != nil {
		logger.Log.Errorw("failed to sign analyst token", "username", username, "error", err)
		return "", err
	}

	logger.Log.Infow("analyst logged in", "username", username, "analyst_id", account.UserID)
	return token, nil
}
