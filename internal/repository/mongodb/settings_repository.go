package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/agence/internal/settings"
)

// SettingsRepository implements settings.Store on a MongoDB collection.
type SettingsRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ settings.Store = (*SettingsRepository)(nil)

type settingRecord struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Get retrieves the value stored under key.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var record settingRecord
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", settings.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load setting %s: %w", key, err)
	}
	return record.Value, nil
}

// Set upserts value under key.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	record := settingRecord{Key: key, Value: value, UpdatedAt: r.now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, record, opts); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
