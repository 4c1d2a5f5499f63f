package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
	"github.com/jamar2101/Back-End-Artalis/internal/catalog"
	"github.com/jamar2101/Back-End-Artalis/internal/models"
)

// fakeStore is an in-memory ProductStore that evaluates the same bson
// filters and sorts the catalog package emits. It keeps insertion order, so
// sort ties resolve the way a fresh mongo collection resolves them.
type fakeStore struct {
	mu       sync.Mutex
	products []models.Product
	now      int // monotonically bumps CreatedAt for inserts
}

func newFakeStore(seed []models.Product) *fakeStore {
	s := &fakeStore{}
	s.products = append(s.products, seed...)
	return s
}

func (s *fakeStore) Insert(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = primitive.NewObjectID()
	s.now++
	now := time.Now().Add(time.Duration(s.now) * time.Second)
	product.CreatedAt = now
	product.UpdatedAt = now
	s.products = append(s.products, *product)
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Parfum tidak ditemukan")
	}
	for i := range s.products {
		if s.products[i].ID == objID {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, apperr.NotFound("Parfum tidak ditemukan")
}

func (s *fakeStore) Find(_ context.Context, filter bson.M, sortOrder bson.D, window catalog.Window) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Product, 0)
	for _, p := range s.products {
		if matches(p, filter) {
			matched = append(matched, p)
		}
	}
	applySort(matched, sortOrder)

	if window.Skip >= int64(len(matched)) {
		return []models.Product{}, nil
	}
	matched = matched[window.Skip:]
	if int64(len(matched)) > window.Limit {
		matched = matched[:window.Limit]
	}
	return matched, nil
}

func (s *fakeStore) Count(_ context.Context, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, p := range s.products {
		if matches(p, filter) {
			total++
		}
	}
	return total, nil
}

func (s *fakeStore) Replace(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}
	return apperr.NotFound("Parfum tidak ditemukan")
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Parfum tidak ditemukan")
	}
	for i := range s.products {
		if s.products[i].ID == objID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Parfum tidak ditemukan")
}

func (s *fakeStore) Categories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func matches(p models.Product, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "category":
			if p.Category != want {
				return false
			}
		case "isFeatured":
			if p.IsFeatured != want {
				return false
			}
		case "price":
			bounds := want.(bson.M)
			if min, ok := bounds["$gte"]; ok && p.Price < min.(float64) {
				return false
			}
			if max, ok := bounds["$lte"]; ok && p.Price > max.(float64) {
				return false
			}
		case "$text":
			term := strings.ToLower(want.(bson.M)["$search"].(string))
			haystack := strings.ToLower(p.Name + " " + p.Description)
			if !strings.Contains(haystack, term) {
				return false
			}
		}
	}
	return true
}

func applySort(products []models.Product, order bson.D) {
	sort.SliceStable(products, func(i, j int) bool {
		for _, e := range order {
			c := compareField(products[i], products[j], e.Key)
			if dir, _ := e.Value.(int); dir < 0 {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

func compareField(a, b models.Product, field string) int {
	switch field {
	case "price":
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "createdAt":
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			return -1
		case a.CreatedAt.After(b.CreatedAt):
			return 1
		}
	case "isFeatured":
		switch {
		case !a.IsFeatured && b.IsFeatured:
			return -1
		case a.IsFeatured && !b.IsFeatured:
			return 1
		}
	}
	return 0
}
