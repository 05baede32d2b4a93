package notificationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"easyislanders/database"
	"easyislanders/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
// Seq values come from a counters document so the stored sequence stays
// strictly ordered across writers.
type MongoNotificationRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoNotificationRepo creates a new Mongo-backed notification repository.
func NewMongoNotificationRepo() *MongoNotificationRepo {
	db := database.MongoClient.Database(database.DBName)
	return &MongoNotificationRepo{
		coll:     db.Collection("notifications"),
		counters: db.Collection("counters"),
	}
}

func (repo *MongoNotificationRepo) nextSeq(ctx context.Context) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := repo.counters.FindOneAndUpdate(ctx,
		bson.M{"id": "notification_seq"},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("error allocating notification seq: %w", err)
	}
	return doc.Value, nil
}

// Prepend assigns the next sequence number and inserts the record.
func (repo *MongoNotificationRepo) Prepend(ctx context.Context, n *models.Notification) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	seq, err := repo.nextSeq(ctxWithTimeout)
	if err != nil {
		return err
	}
	n.Seq = seq

	if _, err := repo.coll.InsertOne(ctxWithTimeout, n); err != nil {
		return fmt.Errorf("error appending notification: %w", err)
	}
	return nil
}

// List returns notifications most-recent-first.
func (repo *MongoNotificationRepo) List(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var notifications []models.Notification
	if err := cursor.All(ctxWithTimeout, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips one record's read flag.
func (repo *MongoNotificationRepo) MarkRead(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctxWithTimeout,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("error marking notification %s read: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TrimTo deletes everything older than the n most recent records.
func (repo *MongoNotificationRepo) TrimTo(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "seq", Value: -1}}).
		SetSkip(int64(n - 1))
	var oldest models.Notification
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{}, opts).Decode(&oldest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil // fewer than n records stored
		}
		return fmt.Errorf("error finding trim boundary: %w", err)
	}

	if _, err := repo.coll.DeleteMany(ctxWithTimeout, bson.M{"seq": bson.M{"$lt": oldest.Seq}}); err != nil {
		return fmt.Errorf("error trimming notifications: %w", err)
	}
	return nil
}
