package catalogRepo

import (
	"context"
	"sync"

	"easyislanders/models"
)

// MemoryCatalogRepo is an in-memory CatalogRepository for development mode
// and tests.
type MemoryCatalogRepo struct {
	mu    sync.RWMutex
	items map[string]models.CatalogItem
	order []string
}

// NewMemoryCatalogRepo creates an in-memory catalog holding the given items.
func NewMemoryCatalogRepo(items []models.CatalogItem) *MemoryCatalogRepo {
	repo := &MemoryCatalogRepo{items: make(map[string]models.CatalogItem, len(items))}
	for _, item := range items {
		repo.items[item.ID] = item
		repo.order = append(repo.order, item.ID)
	}
	return repo
}

// NewSeededMemoryCatalogRepo creates an in-memory catalog preloaded with the
// North Cyprus fixture listings.
func NewSeededMemoryCatalogRepo() *MemoryCatalogRepo {
	return NewMemoryCatalogRepo(SeedItems())
}

func (repo *MemoryCatalogRepo) GetByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	item, ok := repo.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (repo *MemoryCatalogRepo) GetAll(ctx context.Context) ([]models.CatalogItem, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]models.CatalogItem, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, repo.items[id])
	}
	return out, nil
}

// SeedItems returns the fixture catalog used in development mode.
func SeedItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:          "re_0",
			Title:       "3+1 Villa with Sea View, Kyrenia",
			Domain:      "Real Estate",
			SubCategory: "Villa",
			Location:    "Kyrenia",
			Description: "Spacious villa overlooking the harbour, private garden.",
			Price:       100000,
			Rating:      4.7,
			Image:       "https://images.easyislanders.com/re_0.jpg",
			Contact:     "+90 533 821 0045",
			Amenities:   []string{"Pool", "Garden", "Air Conditioning", "Parking"},
			Tags:        []string{"sea view", "family"},
		},
		{
			ID:          "re_1",
			Title:       "2+1 Apartment near EMU, Famagusta",
			Domain:      "Real Estate",
			SubCategory: "Apartment",
			Location:    "Famagusta",
			Description: "Furnished apartment five minutes from campus.",
			Price:       450,
			Rating:      4.2,
			Image:       "https://images.easyislanders.com/re_1.jpg",
			Contact:     "+90 533 870 5512",
			Amenities:   []string{"Air Conditioning", "Wi-Fi", "Furnished"},
			Tags:        []string{"student", "monthly"},
		},
		{
			ID:          "car_0",
			Title:       "Toyota Hilux 2021, Automatic",
			Domain:      "Cars",
			SubCategory: "Pickup",
			Location:    "Nicosia",
			Description: "Single owner, full service history.",
			Price:       18500,
			Rating:      4.5,
			Image:       "https://images.easyislanders.com/car_0.jpg",
			Contact:     "+90 542 661 2390",
			Features:    []string{"Automatic", "4x4", "Tow Bar"},
		},
		{
			ID:          "rest_0",
			Title:       "Harbour View Meze House",
			Domain:      "Restaurants",
			SubCategory: "Meze",
			Location:    "Kyrenia Harbour",
			Description: "Traditional meze with a terrace over the old harbour.",
			Price:       35,
			Image:       "https://images.easyislanders.com/rest_0.jpg",
			Contact:     "+90 533 849 7701",
			Tags:        []string{"terrace", "seafood"},
		},
		{
			ID:          "svc_0",
			Title:       "Island Movers House Relocation",
			Domain:      "Services",
			SubCategory: "Moving",
			Location:    "Island-wide",
			Description: "Packing, transport and setup across North Cyprus.",
			Price:       120,
			Rating:      4.0,
			Contact:     "+90 548 233 1068",
			Tags:        []string{"relocation", "packing"},
		},
	}
}
