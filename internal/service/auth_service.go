package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"judgesim/internal/model"
	"judgesim/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUIDMismatch  = errors.New("token uid does not match profile uid")
)

// AuthService validates bearer tokens and provisions user profiles
type AuthService struct {
	jwtSecret []byte
	users     repository.UserRepo
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string, users repository.UserRepo) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		users:     users,
	}
}

// ValidateToken parses and verifies a bearer JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid || claims.UID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// EnsureProfile provisions a profile for an authenticated identity. The call
// is idempotent: an existing profile is returned unchanged with created
// false. The token uid must match the requested firebaseUid.
func (s *AuthService) EnsureProfile(ctx context.Context, claims *model.UserClaims, req *model.SignupRequest) (*model.UserProfile, bool, error) {
	if req.FirebaseUID == "" || claims.UID != req.FirebaseUID {
		return nil, false, ErrUIDMismatch
	}

	existing, err := s.users.GetByFirebaseUID(ctx, req.FirebaseUID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	level := req.ExperienceLevel
	if level == "" {
		level = model.LevelRookie
	}

	profile := &model.UserProfile{
		ID:              uuid.New().String(),
		FirebaseUID:     req.FirebaseUID,
		Email:           req.Email,
		DisplayName:     req.DisplayName,
		TeamNumber:      req.TeamNumber,
		Role:            role,
		ExperienceLevel: level,
		CreatedAt:       time.Now(),
	}
	if err := s.users.Create(ctx, profile); err != nil {
		return nil, false, err
	}
	return profile, true, nil
}
