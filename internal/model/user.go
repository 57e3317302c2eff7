package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole on a robotics team
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleMentor  UserRole = "MENTOR"
	RoleCoach   UserRole = "COACH"
)

// UserProfile is the persisted application profile keyed by the identity
// provider's uid
type UserProfile struct {
	ID              string          `json:"id" bson:"_id"`
	FirebaseUID     string          `json:"firebaseUid" bson:"firebaseUid"`
	Email           string          `json:"email" bson:"email"`
	DisplayName     string          `json:"displayName" bson:"displayName"`
	TeamNumber      string          `json:"teamNumber" bson:"teamNumber"`
	Role            UserRole        `json:"role" bson:"role"`
	ExperienceLevel DifficultyLevel `json:"experienceLevel" bson:"experienceLevel"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}

// SignupRequest provisions a profile for an authenticated identity
type SignupRequest struct {
	FirebaseUID     string          `json:"firebaseUid"`
	Email           string          `json:"email"`
	DisplayName     string          `json:"displayName"`
	TeamNumber      string          `json:"teamNumber"`
	Role            UserRole        `json:"role"`
	ExperienceLevel DifficultyLevel `json:"experienceLevel"`
}

// UserClaims are the bearer token claims issued by the identity provider
type UserClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
