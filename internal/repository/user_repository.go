package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
	"github.com/jamar2101/Back-End-Artalis/internal/models"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("Email atau kata sandi salah")
	}
	if err != nil {
		return nil, apperr.Internal("Gagal mengambil data pengguna", err)
	}
	return &user, nil
}

// DeleteAll clears the collection. Used by the seed command only.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return apperr.Internal("Gagal mengosongkan koleksi pengguna", err)
	}
	return nil
}

// InsertMany bulk-loads sample users. Used by the seed command only.
func (r *UserRepository) InsertMany(ctx context.Context, users []models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	docs := make([]interface{}, len(users))
	for i := range users {
		if users[i].CreatedAt.IsZero() {
			users[i].CreatedAt = time.Now()
		}
		docs[i] = users[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return apperr.Internal("Gagal mengimpor data pengguna", err)
	}
	return nil
}
