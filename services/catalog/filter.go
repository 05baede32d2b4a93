package catalog

import (
	"sort"
	"strings"

	"easyislanders/models"
)

// MatchesQuery reports whether item satisfies every supplied condition of q.
// Amenity filters require ALL listed amenities to be present, matched
// case-insensitively as substrings against the item's merged
// tag/amenity/feature list.
func MatchesQuery(item models.CatalogItem, q models.SearchQuery) bool {
	if q.Domain != "" && !strings.EqualFold(item.Domain, q.Domain) {
		return false
	}
	if q.SubCategory != "" && !strings.EqualFold(item.SubCategory, q.SubCategory) {
		return false
	}
	if q.Location != "" && !containsFold(item.Location, q.Location) {
		return false
	}
	if q.MinPrice != nil && item.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && item.Price > *q.MaxPrice {
		return false
	}
	if len(q.Amenities) > 0 {
		merged := mergedFeatures(item)
		for _, want := range q.Amenities {
			if !anyContainsFold(merged, want) {
				return false
			}
		}
	}
	if q.Query != "" {
		if !containsFold(item.Title, q.Query) &&
			!containsFold(item.Description, q.Query) &&
			!containsFold(item.Location, q.Query) {
			return false
		}
	}
	return true
}

// SortItems orders items in place by the requested key. The sort is stable,
// so ties keep their catalog order. Items with no rating sort as rating 0.
func SortItems(items []models.CatalogItem, sortBy string) {
	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case models.SortRatingDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	}
}

func mergedFeatures(item models.CatalogItem) []string {
	merged := make([]string, 0, len(item.Tags)+len(item.Amenities)+len(item.Features))
	merged = append(merged, item.Tags...)
	merged = append(merged, item.Amenities...)
	merged = append(merged, item.Features...)
	return merged
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}
