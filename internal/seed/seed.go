// Package seed clears and repopulates the product and user collections with
// the fixed sample records the storefront demos ship with.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/jamar2101/Back-End-Artalis/internal/models"
	"github.com/jamar2101/Back-End-Artalis/internal/repository"
)

type sampleUser struct {
	name     string
	email    string
	password string
	isAdmin  bool
}

var sampleUsers = []sampleUser{
	{name: "Admin", email: "admin@cici.com", password: "password", isAdmin: true},
	{name: "John Doe", email: "john@example.com", password: "123456"},
	{name: "Jane Doe", email: "jane@example.com", password: "123456"},
}

// SampleProducts returns the fixed catalog, with creation times staggered so
// the newest-first default ordering is deterministic (first entry newest).
func SampleProducts() []models.Product {
	base := []models.Product{
		{
			Name:        "Risol Mayo",
			Description: "Risoles renyah berisi mayones krim, sayuran, dan abon ayam yang lezat.",
			Image:       "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg",
			Category:    "snacks",
			Price:       15000,
			InStock:     25,
			IsFeatured:  true,
		},
		{
			Name:        "Lontong Sayur",
			Description: "Lontong dengan kuah sayur santan dan telur rebus yang gurih.",
			Image:       "https://images.pexels.com/photos/5737241/pexels-photo-5737241.jpeg",
			Category:    "rice-dishes",
			Price:       25000,
			InStock:     15,
			IsFeatured:  true,
		},
		{
			Name:        "Onde-Onde",
			Description: "Bola ketan berisi kacang hijau manis dan ditaburi wijen.",
			Image:       "https://images.pexels.com/photos/7474372/pexels-photo-7474372.jpeg",
			Category:    "desserts",
			Price:       12000,
			InStock:     30,
		},
		{
			Name:        "Kue Cucur",
			Description: "Kue tradisional Indonesia dari gula merah dan tepung beras.",
			Image:       "https://images.pexels.com/photos/6210959/pexels-photo-6210959.jpeg",
			Category:    "desserts",
			Price:       10000,
			InStock:     20,
		},
		{
			Name:        "Bakwan Jagung",
			Description: "Gorengan jagung renyah dengan sayuran dan bumbu rempah.",
			Image:       "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg",
			Category:    "snacks",
			Price:       8000,
			InStock:     35,
			IsFeatured:  true,
		},
		{
			Name:        "Es Cendol",
			Description: "Minuman es tradisional dengan cendol hijau dan santan.",
			Image:       "https://images.pexels.com/photos/4397298/pexels-photo-4397298.jpeg",
			Category:    "drinks",
			Price:       18000,
			InStock:     12,
			IsFeatured:  true,
		},
		{
			Name:        "Klepon",
			Description: "Kue tradisional berisi gula merah dan kelapa parut.",
			Image:       "https://images.pexels.com/photos/7474372/pexels-photo-7474372.jpeg",
			Category:    "desserts",
			Price:       10000,
			InStock:     40,
			IsFeatured:  true,
		},
		{
			Name:        "Gado-Gado",
			Description: "Salad sayuran Indonesia dengan bumbu kacang yang khas.",
			Image:       "https://images.pexels.com/photos/5737241/pexels-photo-5737241.jpeg",
			Category:    "rice-dishes",
			Price:       20000,
			InStock:     18,
		},
	}

	now := time.Now()
	for i := range base {
		base[i].ID = primitive.NewObjectID()
		base[i].CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		base[i].UpdatedAt = base[i].CreatedAt
	}
	return base
}

// Import clears both collections and loads the sample data.
func Import(ctx context.Context, db *mongo.Database) error {
	if err := Destroy(ctx, db); err != nil {
		return err
	}

	users := make([]models.User, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), 10)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		users = append(users, models.User{
			ID:        primitive.NewObjectID(),
			Name:      u.name,
			Email:     u.email,
			Password:  string(hashed),
			IsAdmin:   u.isAdmin,
			CreatedAt: time.Now(),
		})
	}

	if err := repository.NewUserRepository(db).InsertMany(ctx, users); err != nil {
		return err
	}
	return repository.NewProductRepository(db).InsertMany(ctx, SampleProducts())
}

// Destroy clears both collections without reloading anything.
func Destroy(ctx context.Context, db *mongo.Database) error {
	if err := repository.NewUserRepository(db).DeleteAll(ctx); err != nil {
		return err
	}
	return repository.NewProductRepository(db).DeleteAll(ctx)
}
