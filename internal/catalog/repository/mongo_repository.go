package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) ProductRepository {
	return &mongoRepository{
		collection: db.Collection("products"),
	}
}

// productDocument is the stored shape; _id is a real ObjectID, converted to
// the normalized string form on the way out.
type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Category    string             `bson:"category"`
	Stock       int                `bson:"stock"`
	Rating      *domain.Rating     `bson:"rating,omitempty"`
}

func (d productDocument) toDomain() *domain.Product {
	return &domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		Image:       d.Image,
		Category:    d.Category,
		Stock:       d.Stock,
		Rating:      d.Rating,
	}
}

func (m mongoRepository) FindByID(ctx context.Context, localID string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(localID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var doc productDocument
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return doc.toDomain(), nil
}

func (m mongoRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration error: %w", err)
	}

	return products, nil
}
