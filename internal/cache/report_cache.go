package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"judgesim/internal/model"
)

// ReportCache keeps each user's latest report hot for the results screen
type ReportCache interface {
	SetLatest(ctx context.Context, userID string, report *model.StoredReport) error
	GetLatest(ctx context.Context, userID string) (*model.StoredReport, error)
}

type reportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
	}
}

func (c *reportCache) SetLatest(ctx context.Context, userID string, report *model.StoredReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "report:latest:"+userID, data, time.Hour).Err()
}

func (c *reportCache) GetLatest(ctx context.Context, userID string) (*model.StoredReport, error) {
	data, err := c.client.Get(ctx, "report:latest:"+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.StoredReport
	err = json.Unmarshal([]byte(data), &report)
	return &report, err
}
