// internal/services/analytics_service.go
// Scheduling run analytics persisted to MongoDB

package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const schedulingRunsCollection = "scheduling_runs"

// AnalyticsService records scheduling run outcomes for later inspection
type AnalyticsService struct {
	db     *mongo.Database
	logger *log.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *mongo.Database, logger *log.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		logger: logger,
	}
}

// LogEvent records an analytics event. Failures are logged and swallowed;
// analytics must never break a scheduling run.
func (s *AnalyticsService) LogEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	event := bson.M{
		"type":       eventType,
		"data":       data,
		"created_at": time.Now(),
	}

	if _, err := s.db.Collection(schedulingRunsCollection).InsertOne(ctx, event); err != nil {
		s.logger.Printf("failed to log analytics event %s: %v", eventType, err)
	}
}

// RunHistory returns the most recent scheduling run events for a tournament.
func (s *AnalyticsService) RunHistory(ctx context.Context, tournamentID string, limit int64) ([]bson.M, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := s.db.Collection(schedulingRunsCollection).Find(ctx,
		bson.M{"data.tournament_id": tournamentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []bson.M
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
