package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultImage is stored when neither an upload nor an imagePath is supplied.
const DefaultImage = "/uploads/default-perfume.jpg"

// Defaults applied on create when the optional perfume attributes are absent.
const (
	DefaultSize          = "100ml"
	DefaultConcentration = "EDP"
)

// Product represents one catalog item.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Price         float64            `json:"price" bson:"price"`
	Category      string             `json:"category" bson:"category"`
	InStock       int                `json:"inStock" bson:"inStock"`
	IsFeatured    bool               `json:"isFeatured" bson:"isFeatured"`
	Image         string             `json:"image" bson:"image"`
	Brand         string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Size          string             `json:"size,omitempty" bson:"size,omitempty"`
	Concentration string             `json:"concentration,omitempty" bson:"concentration,omitempty"`
	Notes         interface{}        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
