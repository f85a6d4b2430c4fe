package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"affirm/internal/models"
	"affirm/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an issued bearer token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// MaxPasswordBytes is the longest password bcrypt accepts, counted in bytes.
const MaxPasswordBytes = 72

// AuthConfig carries the settings AuthService needs.
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Session is the result of a successful login.
type Session struct {
	AccountID uint      `json:"id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService handles account signup, login and token verification.
type AuthService struct {
	accountRepo repositories.AccountRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	bcryptCost  int
	publisher   EventPublisher
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuthService creates a new AuthService. A nil publisher disables events.
func NewAuthService(accountRepo repositories.AccountRepository, cfg AuthConfig, publisher EventPublisher, logger *zap.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accountRepo: accountRepo,
		jwtSecret:   []byte(cfg.JWTSecret),
		tokenTTL:    cfg.TokenTTL,
		bcryptCost:  cfg.BcryptCost,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// NormalizeUsername lowercases and trims a username; usernames are
// case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// CreateAccount registers a new account and returns its ID.
func (s *AuthService) CreateAccount(ctx context.Context, username, email, password string) (uint, error) {
	username = NormalizeUsername(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, fmt.Errorf("%w: username, email, and password are required", ErrValidation)
	}
	if len(password) > MaxPasswordBytes {
		return 0, fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, MaxPasswordBytes)
	}

	if _, err := s.accountRepo.GetByUsername(ctx, username); err == nil {
		return 0, fmt.Errorf("username '%s' %w", username, ErrConflict)
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return 0, fmt.Errorf("email '%s' %w", email, ErrConflict)
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return 0, fmt.Errorf("%w: failed to hash password: %v", ErrStore, err)
	}

	account := &models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return 0, fmt.Errorf("username or email %w", ErrConflict)
		}
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.logger.Info("Account created", zap.Uint("id", account.ID), zap.String("username", account.Username))
	publishEvent(s.publisher, s.logger, Event{
		Type:       EventAccountCreated,
		ID:         account.ID,
		Username:   account.Username,
		OccurredAt: s.now().UTC(),
	})
	return account.ID, nil
}

// Authenticate checks the credentials and issues a signed bearer token.
// Unknown usernames and wrong passwords fail identically.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  account.ID,
		"username": account.Username,
		"exp":      expiresAt.Unix(),
		"iat":      issuedAt.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate token: %v", ErrStore, err)
	}

	return &Session{
		AccountID: account.ID,
		Username:  account.Username,
		Token:     tokenString,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// CurrentAccount loads the account a validated token refers to. A token for
// an account that no longer exists fails with ErrAuth.
func (s *AuthService) CurrentAccount(ctx context.Context, id uint) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d no longer exists: %w", id, ErrAuth)
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return account, nil
}

// ValidateToken parses and validates a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v: %w", err, ErrAuth)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token: %w", ErrAuth)
}
