package models

// CatalogItem is a marketplace listing (property, vehicle, restaurant or
// service). It is read-only input to the booking engine: bookings snapshot
// its fields at creation time and never write back.
type CatalogItem struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Domain      string   `bson:"domain" json:"domain"` // "Real Estate", "Cars", "Restaurants", "Services"
	SubCategory string   `bson:"sub_category,omitempty" json:"subCategory,omitempty"`
	Location    string   `bson:"location" json:"location"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price"` // GBP
	Rating      float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
	Contact     string   `bson:"contact,omitempty" json:"contact,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Amenities   []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`
}

// Sort keys accepted by catalog search.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

// SearchQuery filters the catalog. All supplied conditions must hold
// (logical AND); zero values mean "not filtered".
type SearchQuery struct {
	Domain      string   `json:"domain,omitempty" form:"domain"`
	SubCategory string   `json:"subCategory,omitempty" form:"subCategory"`
	Location    string   `json:"location,omitempty" form:"location"`
	Query       string   `json:"query,omitempty" form:"q"`
	MinPrice    *float64 `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice,omitempty" form:"maxPrice"`
	Amenities   []string `json:"amenities,omitempty" form:"amenities"`
	SortBy      string   `json:"sortBy,omitempty" form:"sortBy"`
}
