package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
	"github.com/jamar2101/Back-End-Artalis/internal/catalog"
	"github.com/jamar2101/Back-End-Artalis/internal/models"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 3 * time.Second
	queryTimeout = 10 * time.Second
)

const msgProductNotFound = "Parfum tidak ditemukan"

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

// Insert persists a new product, assigning its identifier and timestamps.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	product.ID = primitive.NewObjectID()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return apperr.Internal("Gagal menyimpan parfum", err)
	}
	return nil
}

// FindByID fetches one product. A malformed identifier is reported the same
// way as a missing one: not found.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound(msgProductNotFound)
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound(msgProductNotFound)
	}
	if err != nil {
		return nil, apperr.Internal("Gagal mengambil parfum", err)
	}
	return &product, nil
}

// Find returns one window of the sorted, filtered result set.
func (r *ProductRepository) Find(ctx context.Context, filter bson.M, sort bson.D, window catalog.Window) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(window.Skip).
		SetLimit(window.Limit).
		SetSort(sort)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Internal("Gagal mengambil daftar parfum", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperr.Internal("Gagal membaca daftar parfum", err)
	}
	return products, nil
}

// Count runs the independent count pass behind the listing's total. It is a
// separate round-trip from Find, so the pair is not atomic under concurrent
// writes.
func (r *ProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperr.Internal("Gagal menghitung parfum", err)
	}
	return total, nil
}

// Replace writes back a product previously loaded with FindByID.
func (r *ProductRepository) Replace(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	product.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return apperr.Internal("Gagal memperbarui parfum", err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(msgProductNotFound)
	}
	return nil
}

// Delete removes a product permanently.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound(msgProductNotFound)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Internal("Gagal menghapus parfum", err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound(msgProductNotFound)
	}
	return nil
}

// Categories returns the distinct category values, in store order.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, apperr.Internal("Gagal mengambil kategori parfum", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// DeleteAll clears the collection. Used by the seed command only.
func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return apperr.Internal("Gagal mengosongkan koleksi parfum", err)
	}
	return nil
}

// InsertMany bulk-loads sample products. Used by the seed command only.
func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return apperr.Internal("Gagal mengimpor data parfum", err)
	}
	return nil
}
