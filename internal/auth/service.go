package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

// devTTL caps dev tokens when JWT_TTL_MINUTES is unset or nonsense.
// Without it a zero TTL mints tokens with exp == iat, dead on arrival.
const devTTL = 30 * 24 * time.Hour

// Service issues and verifies HS256 access tokens carrying identity and role.
type Service struct {
	config *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// SignInDev issues a token for local development. The role claim is
// normalized through access.ParseRole so an unknown role degrades to guest
// instead of minting an unexpected capability.
func (s *Service) SignInDev(req DevAuthRequest) (*DevAuthResponse, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = "dev-user"
	}

	role := access.ParseRole(strings.TrimSpace(req.Role))
	if role == access.RoleGuest {
		role = access.RoleUser
	}

	ttl := time.Duration(s.config.JWTTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = devTTL
	}
	accessToken, err := s.generateJWT(userID, role, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dev JWT: %w", err)
	}

	return &DevAuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

func (s *Service) generateJWT(userID string, role access.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	exp := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iss":  s.config.JWTIssuer,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// VerifyJWT validates a token and resolves the actor it describes.
func (s *Service) VerifyJWT(tokenString string) (access.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return access.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return access.Actor{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return access.Actor{}, ErrInvalidToken
	}

	roleClaim, _ := claims["role"].(string)

	return access.Actor{
		ID:   sub,
		Role: access.ParseRole(roleClaim),
	}, nil
}
