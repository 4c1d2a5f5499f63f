// Package catalog builds MongoDB queries for the product listing endpoints:
// parameter parsing, filter assembly, sort resolution and the pagination
// window. Everything here is pure so it can be exercised without a store.
package catalog

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultFeaturedLimit = 8
	MaxFeaturedLimit     = 50
)

// ListParams is the decoded form of the listing query string. String fields
// keep their raw value; "" means the parameter was absent. Numeric fields are
// already defaulted and clamped by ParseListParams.
type ListParams struct {
	Page     int
	Limit    int
	Category string
	Featured string
	Search   string
	MinPrice string
	MaxPrice string
	Sort     string
}

// ParseListParams decodes the query string for GET /api/products. Per field:
//
//	page     int, default 1, non-numeric or < 1 falls back to the default
//	limit    int, default 10, same fallback, capped at MaxLimit
//	others   passed through raw; their parse rules live in BuildFilter
//	         and ResolveSort
func ParseListParams(q url.Values) ListParams {
	return ListParams{
		Page:     intParam(q.Get("page"), DefaultPage, 0),
		Limit:    intParam(q.Get("limit"), DefaultLimit, MaxLimit),
		Category: q.Get("category"),
		Featured: q.Get("featured"),
		Search:   q.Get("search"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
		Sort:     q.Get("sort"),
	}
}

// FeaturedLimit decodes the limit for GET /api/products/featured.
func FeaturedLimit(q url.Values) int {
	return intParam(q.Get("limit"), DefaultFeaturedLimit, MaxFeaturedLimit)
}

// intParam parses a positive integer, falling back to def when the value is
// absent, non-numeric or < 1, and capping at max when max > 0. The lower
// clamp keeps page/limit from producing a negative skip.
func intParam(raw string, def, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
