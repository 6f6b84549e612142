package session

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Sessions"

type Repository interface {
	Insert(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id string) (*Session, error)
	UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error
	Delete(ctx context.Context, id string) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the TTL index that reaps expired sessions.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create session TTL index: %w", err)
	}
	return nil
}

func (r *mongoRepository) Insert(ctx context.Context, session *Session) error {
	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Session, error) {
	var session Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

func (r *mongoRepository) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	update := bson.M{"$set": bson.M{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}}
	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update session tokens: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
