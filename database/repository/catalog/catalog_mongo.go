package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"easyislanders/database"
	"easyislanders/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new Mongo-backed catalog repository.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{
		coll: database.MongoClient.Database(database.DBName).Collection("catalog"),
	}
}

// GetByID retrieves a catalog item by its ID.
func (repo *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.CatalogItem
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching catalog item %s: %w", id, err)
	}
	return &item, nil
}

// GetAll returns every catalog item. Catalog sizes are in the hundreds, so a
// full scan is acceptable.
func (repo *MongoCatalogRepo) GetAll(ctx context.Context) ([]models.CatalogItem, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing catalog items: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var items []models.CatalogItem
	if err := cursor.All(ctxWithTimeout, &items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog items: %w", err)
	}
	return items, nil
}
