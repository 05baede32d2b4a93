package catalogRepo

import (
	"context"
	"errors"

	"easyislanders/models"
)

// ErrNotFound is returned when a catalog item id does not resolve.
var ErrNotFound = errors.New("catalog item not found")

// CatalogRepository reads the marketplace listings. The booking engine never
// writes to the catalog.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.CatalogItem, error)
	GetAll(ctx context.Context) ([]models.CatalogItem, error)
}
