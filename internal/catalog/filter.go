package catalog

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildFilter assembles the conjunctive filter for the listing query. With no
// parameters the filter is empty and matches every product. Clauses are
// independent and ANDed by the store.
func (p ListParams) BuildFilter() bson.M {
	filter := bson.M{}

	if p.Category != "" {
		filter["category"] = p.Category
	}

	// Any value other than the literal "true" filters for non-featured.
	if p.Featured != "" {
		filter["isFeatured"] = p.Featured == "true"
	}

	// Full-text search over the name/description text index; ranking and
	// tokenization belong to the store.
	if p.Search != "" {
		filter["$text"] = bson.M{"$search": p.Search}
	}

	// Inclusive price bounds. A bound that does not parse as a decimal is
	// treated as absent, never as an error.
	price := bson.M{}
	if min, err := strconv.ParseFloat(p.MinPrice, 64); err == nil {
		price["$gte"] = min
	}
	if max, err := strconv.ParseFloat(p.MaxPrice, 64); err == nil {
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}
