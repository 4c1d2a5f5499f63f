package catalog

import "go.mongodb.org/mongo-driver/bson"

// ResolveSort maps a sort token to its ordering. Unknown or absent tokens
// fall back to newest-first. Only "featured" defines a secondary key; other
// ties are left to the store's native order.
func ResolveSort(token string) bson.D {
	switch token {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "name_asc":
		return bson.D{{Key: "name", Value: 1}}
	case "name_desc":
		return bson.D{{Key: "name", Value: -1}}
	case "featured":
		return bson.D{{Key: "isFeatured", Value: -1}, {Key: "createdAt", Value: -1}}
	default: // "newest" and everything else
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
