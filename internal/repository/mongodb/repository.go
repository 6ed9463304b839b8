package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/domain/models"
)

// ErrNotFound indicates no mandate matches the identifier.
var ErrNotFound = errors.New("mandate not found")

const (
	mandatesCollection = "mandates"
	settingsCollection = "settings"
)

// Repository defines the interface for mandate storage.
type Repository interface {
	Save(ctx context.Context, m models.Mandate) (models.Mandate, error)
	Get(ctx context.Context, id string) (models.Mandate, error)
	List(ctx context.Context) ([]models.Mandate, error)
}

// MongoDBRepository implements Repository on MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
	logger *zap.Logger
	now    func() time.Time
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*MongoDBRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// Save upserts a mandate. Mandates without an identifier receive a new UUID.
func (r *MongoDBRepository) Save(ctx context.Context, m models.Mandate) (models.Mandate, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	record, err := toRecord(m, r.now().UTC())
	if err != nil {
		return models.Mandate{}, err
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection(mandatesCollection).ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts); err != nil {
		return models.Mandate{}, fmt.Errorf("failed to save mandate %s: %w", m.Number, err)
	}

	r.logger.Debug("mandate saved", zap.String("id", m.ID), zap.String("number", m.Number))
	return m, nil
}

// Get loads a mandate by identifier.
func (r *MongoDBRepository) Get(ctx context.Context, id string) (models.Mandate, error) {
	var record mandateRecord
	err := r.collection(mandatesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Mandate{}, ErrNotFound
	}
	if err != nil {
		return models.Mandate{}, fmt.Errorf("failed to load mandate %s: %w", id, err)
	}
	return fromRecord(record)
}

// List returns every mandate ordered by mandate number.
func (r *MongoDBRepository) List(ctx context.Context) ([]models.Mandate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cursor, err := r.collection(mandatesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandates: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var records []mandateRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode mandates: %w", err)
	}

	out := make([]models.Mandate, 0, len(records))
	for _, record := range records {
		m, err := fromRecord(record)
		if err != nil {
			r.logger.Warn("skip unreadable mandate", zap.String("id", record.ID), zap.Error(err))
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Settings returns the settings store backed by the same database.
func (r *MongoDBRepository) Settings() *SettingsRepository {
	return &SettingsRepository{coll: r.collection(settingsCollection), now: r.now}
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
