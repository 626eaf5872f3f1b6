package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository" // Import repository package
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4" // Import JWT library
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt" // Import bcrypt
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// --- Error Definitions ---
// The first six are the user-facing causes, see AuthMessage.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrWeakPassword      = errors.New("password is too weak")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrRateLimited       = errors.New("too many failed sign-in attempts")

	ErrAccountValidation = errors.New("account validation failed")
	ErrHashingFailed     = errors.New("failed to hash password")
	ErrTokenGeneration   = errors.New("failed to generate authentication token")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrTokenRevoked      = errors.New("token has been revoked")
)

// AuthMessage maps an auth error to the message shown to the user.
func AuthMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrWrongPassword):
		return "Invalid password"
	case errors.Is(err, ErrUserAlreadyExists):
		return "User already exists"
	case errors.Is(err, ErrWeakPassword):
		return fmt.Sprintf("Password should be at least %d characters", MinPasswordLength)
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, ErrRateLimited):
		return "Too many failed attempts. Please try again later."
	case errors.Is(err, ErrAccountValidation):
		return "Please fill in all required fields"
	default:
		return "Authentication failed. Please try again."
	}
}

// authCause labels metrics; unknown errors collapse to "other".
func authCause(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, ErrUserAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrWeakPassword):
		return "weak_password"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrAccountValidation):
		return "validation"
	default:
		return "other"
	}
}

// NewAccount is the sign-up form.
type NewAccount struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Session is the result of a successful sign-in or sign-up.
type Session struct {
	Token     string       `json:"token"`
	TokenID   string       `json:"-"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

// Claims is the JWT payload.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// AuthService is the single authentication capability. The backing account
// store (mongo or the seeded mock store) is chosen once at startup through the
// UserRepository handed to NewAuthService.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	CreateAccount(ctx context.Context, account NewAccount) (*Session, error)
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error
	// VerifyToken validates signature, expiry and revocation.
	VerifyToken(tokenString string) (*Claims, error)
}

// AuthOptions tunes the sign-in throttle.
type AuthOptions struct {
	MaxFailedAttempts int
	LockoutWindow     time.Duration
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
	limiter       *loginLimiter
	revoked       *revocationList
	validate      *validator.Validate
	now           func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration, opts AuthOptions) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	if opts.MaxFailedAttempts <= 0 {
		opts.MaxFailedAttempts = 5
	}
	if opts.LockoutWindow <= 0 {
		opts.LockoutWindow = 15 * time.Minute
	}
	s := &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		validate:      validator.New(),
		now:           time.Now,
	}
	clock := func() time.Time { return s.now() }
	s.limiter = newLoginLimiter(opts.MaxFailedAttempts, opts.LockoutWindow, clock)
	s.revoked = newRevocationList(clock)
	return s
}

// Authenticate checks the credentials and issues a session token.
func (s *authService) Authenticate(ctx context.Context, email, password string) (session *Session, err error) {
	defer func() {
		if err != nil {
			metrics.AuthFailuresTotal.WithLabelValues(authCause(err)).Inc()
		}
	}()

	email = domain.NormalizeEmail(email)
	if err := s.checkEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrWrongPassword
	}

	if s.limiter.Locked(email) {
		return nil, ErrRateLimited
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.limiter.Fail(email)
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.limiter.Fail(email)
		log.Debugf("failed sign-in for %s", email)
		return nil, ErrWrongPassword
	}
	s.limiter.Reset(email)

	return s.issueSession(user)
}

// CreateAccount registers a user and signs them in.
func (s *authService) CreateAccount(ctx context.Context, account NewAccount) (session *Session, err error) {
	defer func() {
		if err != nil {
			metrics.AuthFailuresTotal.WithLabelValues(authCause(err)).Inc()
		}
	}()

	account.FirstName = strings.TrimSpace(account.FirstName)
	account.LastName = strings.TrimSpace(account.LastName)
	account.Email = domain.NormalizeEmail(account.Email)

	if err := s.validate.Struct(account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountValidation, err)
	}
	if err := s.checkEmail(account.Email); err != nil {
		return nil, err
	}
	if len(account.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	_, err = s.userRepo.GetByEmail(ctx, account.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		PasswordHash: string(hashedPassword),
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent sign-up with the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	log.Infof("created account %s", user.ID.Hex())

	return s.issueSession(user)
}

// CurrentUser resolves the user behind a verified token.
func (s *authService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// SignOut revokes a token id until the token would have expired anyway.
func (s *authService) SignOut(_ context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrInvalidToken
	}
	s.revoked.Revoke(tokenID, expiresAt)
	return nil
}

func (s *authService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := primitive.ObjectIDFromHex(claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}
	if s.revoked.IsRevoked(claims.ID) {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (s *authService) checkEmail(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// --- JWT Helper ---

func (s *authService) issueSession(user *domain.User) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.jwtExpiration)
	tokenID := uuid.NewString()

	claims := &Claims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fitness-tracker",
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return &Session{
		Token:     signedToken,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// DemoAccount is a seeded account of the mock provider.
type DemoAccount struct {
	FirstName, LastName, Email, Password string
}

// DemoAccounts are the accounts every mock store starts with.
var DemoAccounts = []DemoAccount{
	{FirstName: "Alex", LastName: "Johnson", Email: "alex.johnson@example.com", Password: "password123"},
	{FirstName: "Demo", LastName: "User", Email: "demo@example.com", Password: "demo123"},
}

// SeedDemoAccounts stores the demo accounts in repo, skipping ones that already exist.
func SeedDemoAccounts(ctx context.Context, repo repository.UserRepository) error {
	for _, acc := range DemoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return ErrHashingFailed
		}
		_, err = repo.Create(ctx, &domain.User{
			FirstName:    acc.FirstName,
			LastName:     acc.LastName,
			Email:        acc.Email,
			PasswordHash: string(hash),
		})
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("failed to seed %s: %w", acc.Email, err)
		}
	}
	return nil
}
