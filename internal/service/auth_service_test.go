package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"judgesim/internal/model"
)

type fakeUserRepo struct {
	profiles map[string]*model.UserProfile
	creates  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{profiles: make(map[string]*model.UserProfile)}
}

func (r *fakeUserRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	r.creates++
	r.profiles[profile.FirebaseUID] = profile
	return nil
}

func (r *fakeUserRepo) GetByFirebaseUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	return r.profiles[uid], nil
}

const testSecret = "test-secret"

func signToken(t *testing.T, uid string) string {
	t.Helper()
	claims := &model.UserClaims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestValidateToken(t *testing.T) {
	svc := NewAuthService(testSecret, newFakeUserRepo())

	claims, err := svc.ValidateToken(signToken(t, "uid-1"))
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UID != "uid-1" {
		t.Errorf("uid = %q", claims.UID)
	}

	if _, err := svc.ValidateToken("garbage"); err != ErrInvalidToken {
		t.Errorf("garbage token returned %v, want ErrInvalidToken", err)
	}

	wrong := NewAuthService("other-secret", newFakeUserRepo())
	if _, err := wrong.ValidateToken(signToken(t, "uid-1")); err != ErrInvalidToken {
		t.Errorf("wrong secret returned %v, want ErrInvalidToken", err)
	}
}

func TestEnsureProfileIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testSecret, repo)
	claims := &model.UserClaims{UID: "uid-1"}
	req := &model.SignupRequest{FirebaseUID: "uid-1", Email: "a@b.c", DisplayName: "Alex"}

	first, created, err := svc.EnsureProfile(context.Background(), claims, req)
	if err != nil {
		t.Fatalf("EnsureProfile: %v", err)
	}
	if !created {
		t.Error("first call must create the profile")
	}
	if first.Role != model.RoleStudent {
		t.Errorf("role = %s, want default STUDENT", first.Role)
	}
	if first.ExperienceLevel != model.LevelRookie {
		t.Errorf("experience = %s, want default rookie", first.ExperienceLevel)
	}

	second, created, err := svc.EnsureProfile(context.Background(), claims, req)
	if err != nil {
		t.Fatalf("EnsureProfile repeat: %v", err)
	}
	if created {
		t.Error("repeat call must not create")
	}
	if second.ID != first.ID {
		t.Error("repeat call must return the existing profile")
	}
	if repo.creates != 1 {
		t.Errorf("repo saw %d creates, want 1", repo.creates)
	}
}

func TestEnsureProfileUIDMismatch(t *testing.T) {
	svc := NewAuthService(testSecret, newFakeUserRepo())
	claims := &model.UserClaims{UID: "uid-1"}

	_, _, err := svc.EnsureProfile(context.Background(), claims, &model.SignupRequest{FirebaseUID: "uid-2"})
	if err != ErrUIDMismatch {
		t.Errorf("got %v, want ErrUIDMismatch", err)
	}

	_, _, err = svc.EnsureProfile(context.Background(), claims, &model.SignupRequest{})
	if err != ErrUIDMismatch {
		t.Errorf("empty uid got %v, want ErrUIDMismatch", err)
	}
}
