package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"judgesim/internal/model"
)

// CatalogRepo persists the question and award catalogs so other tools
// (dashboards, content review) can read them without the server binary
type CatalogRepo interface {
	SeedQuestions(ctx context.Context, questions []model.Question) error
	SeedAwards(ctx context.Context, awards []model.Award) error
	SeedReadinessQuiz(ctx context.Context, quiz []model.ReadinessQuestion) error
	CountQuestions(ctx context.Context) (int64, error)
}

type catalogRepo struct {
	questions *mongo.Collection
	awards    *mongo.Collection
	readiness *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		questions: db.Collection("questions"),
		awards:    db.Collection("awards"),
		readiness: db.Collection("readiness_quiz"),
	}
}

func (r *catalogRepo) SeedQuestions(ctx context.Context, questions []model.Question) error {
	opts := options.Replace().SetUpsert(true)
	for _, q := range questions {
		if _, err := r.questions.ReplaceOne(ctx, bson.M{"_id": q.ID}, q, opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *catalogRepo) SeedAwards(ctx context.Context, awards []model.Award) error {
	opts := options.Replace().SetUpsert(true)
	for _, a := range awards {
		if _, err := r.awards.ReplaceOne(ctx, bson.M{"_id": a.ID}, a, opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *catalogRepo) SeedReadinessQuiz(ctx context.Context, quiz []model.ReadinessQuestion) error {
	opts := options.Replace().SetUpsert(true)
	for _, q := range quiz {
		if _, err := r.readiness.ReplaceOne(ctx, bson.M{"_id": q.ID}, q, opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *catalogRepo) CountQuestions(ctx context.Context) (int64, error) {
	return r.questions.CountDocuments(ctx, bson.M{})
}
