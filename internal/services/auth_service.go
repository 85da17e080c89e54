package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles credential storage and bearer token issue/verify.
// The signing secret, password pepper, and hash cost all come from the
// startup configuration and never change for the process lifetime.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	pepper    string
	hashCost  int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  cfg.TokenTTL,
		pepper:    cfg.PasswordPepper,
		hashCost:  cfg.BcryptCost,
	}
}

// Register hashes the supplied password combined with the process pepper and
// persists the user. Username uniqueness is enforced by the store; a
// collision comes back as models.ErrDuplicateUsername.
func (s *AuthService) Register(user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+s.pepper), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(user); err != nil {
		return err
	}
	return nil
}

// Authenticate looks up a user by username and compares the peppered
// password against the stored hash. Unknown username and wrong password
// both yield models.ErrInvalidCredentials so callers cannot enumerate
// usernames.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password+s.pepper)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates a user and returns a signed token on success.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.Authenticate(username, password)
	if err != nil {
		return "", err
	}
	return s.IssueToken(user)
}

// IssueToken produces an HS256 token carrying the user identity, expiring
// after the configured TTL.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(user.ID),
		"username": user.Username,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token, returning its claims. Every
// failure mode, malformed input included, is an ordinary error value
// wrapping models.ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}
