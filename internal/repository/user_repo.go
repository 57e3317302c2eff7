package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"judgesim/internal/model"
)

// UserRepo handles MongoDB operations for user profiles
type UserRepo interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	GetByFirebaseUID(ctx context.Context, uid string) (*model.UserProfile, error)
}

type userRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		collection: db.Collection("users"),
	}
}

func (r *userRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *userRepo) GetByFirebaseUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"firebaseUid": uid}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
