package service

import (
	"alcyxob/gym-coach/internal/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- Error Definitions ---
var (
	ErrTokenGeneration = errors.New("failed to generate authentication token")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// TokenIssuer is the iss claim on every token this service signs.
const TokenIssuer = "gym-coach"

// --- Service Interface ---
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *domain.User, err error)
	ParseToken(tokenString string) (*Claims, error)
	GetJWTSecret() string
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// --- Service Implementation ---

// authService issues tokens for users the coach service authenticates.
type authService struct {
	coach         CoachService
	jwtSecret     string
	jwtExpiration time.Duration
	now           func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(coach CoachService, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		coach:         coach,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		now:           time.Now,
	}
}

// Login authenticates the user and signs a token carrying its id and role.
func (s *authService) Login(ctx context.Context, username, password string) (token string, user *domain.User, err error) {
	user, err = s.coach.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err = s.generateJWT(user)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return token, user, nil
}

// --- JWT Helpers ---

func (s *authService) generateJWT(user *domain.User) (string, error) {
	issuedAt := s.now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    TokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates signature, method and expiry and returns the claims.
func (s *authService) ParseToken(tokenString string) (*Claims, error) {
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
	if claims.UserID == "" || (claims.Role != domain.RoleTrainer && claims.Role != domain.RoleClient) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
