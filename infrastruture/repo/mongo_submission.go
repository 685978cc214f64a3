package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubmissionRepo handles the persistence of accepted submissions in MongoDB.
type MongoSubmissionRepo struct {
	collection *mongo.Collection
}

// NewMongoSubmissionRepo creates a new MongoSubmissionRepo with the given MongoDB client, database name, and collection name.
func NewMongoSubmissionRepo(client *mongo.Client, dbName, collectionName string) *MongoSubmissionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoSubmissionRepo{
		collection: collection,
	}
}

// Save inserts a record.
func (m *MongoSubmissionRepo) Save(ctx context.Context, r *dmn.Record) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := m.collection.InsertOne(ctx, r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("result id conflict")
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// Count returns the number of stored records.
func (m *MongoSubmissionRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	n, err := m.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.New("unexpected error: " + err.Error())
	}
	return n, nil
}

// Recent returns up to limit records, newest first.
func (m *MongoSubmissionRepo) Recent(ctx context.Context, limit int) ([]dmn.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	records := make([]dmn.Record, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
