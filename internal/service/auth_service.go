package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"scamwise-backend/internal/models"
	"scamwise-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users     *repository.UserRepository
	Email     *EmailService
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthService(users *repository.UserRepository, email *EmailService, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{Users: users, Email: email, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a user account. Duplicate emails are rejected. The welcome
// email is fire-and-forget.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, models.ErrEmailTaken
	} else if err != models.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:               uuid.NewString(),
		Name:             name,
		Email:            email,
		PasswordHash:     string(hash),
		Role:             models.RoleUser,
		SubscriptionPlan: models.PlanNone,
		CreatedAt:        time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.Email != nil {
		go func() {
			body := "Hi " + name + ",\n\nWelcome to ScamWise. Start with the phishing basics module and build your streak.\n"
			if err := s.Email.SendEmail("Welcome to ScamWise", body, []string{email}); err != nil {
				log.Printf("welcome email to %s failed: %v", email, err)
			}
		}()
	}
	return user, nil
}

// Login checks credentials and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken parses and verifies a bearer token.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
