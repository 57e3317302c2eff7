package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"judgesim/internal/model"
)

// ReportRepo handles MongoDB operations for stored feedback reports
type ReportRepo interface {
	Save(ctx context.Context, report *model.StoredReport) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]model.StoredReport, error)
	LatestByUser(ctx context.Context, userID string) (*model.StoredReport, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("reports"),
	}
}

func (r *reportRepo) Save(ctx context.Context, report *model.StoredReport) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": report.ID}, report, opts)
	return err
}

func (r *reportRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]model.StoredReport, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []model.StoredReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepo) LatestByUser(ctx context.Context, userID string) (*model.StoredReport, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	var report model.StoredReport
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
