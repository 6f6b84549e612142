package checkout

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Checkouts"

var ErrCheckoutNotFound = errors.New("checkout not found")

type Repository interface {
	Save(ctx context.Context, checkout *Checkout) error
	FindByDraft(ctx context.Context, draftID string) (*Checkout, error)
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "draft_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create checkout draft index: %w", err)
	}
	return nil
}

func (r *mongoRepository) Save(ctx context.Context, checkout *Checkout) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": checkout.ID}, checkout, opts); err != nil {
		return fmt.Errorf("failed to save checkout: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByDraft(ctx context.Context, draftID string) (*Checkout, error) {
	var checkout Checkout
	err := r.collection.FindOne(ctx, bson.M{"draft_id": draftID}).Decode(&checkout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("failed to find checkout: %w", err)
	}
	return &checkout, nil
}
