package wizard

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

const CollectionName = "BookingDrafts"

var ErrDraftNotFound = errors.New("booking draft not found")

// DraftRepository persists the wizard's in-progress drafts. One draft per
// session at a time.
type DraftRepository interface {
	Save(ctx context.Context, draft *model.BookingDraft) error
	FindByID(ctx context.Context, id string) (*model.BookingDraft, error)
	FindBySession(ctx context.Context, sessionID string) (*model.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

type mongoDraftRepository struct {
	collection *mongo.Collection
}

func NewMongoDraftRepository(db *mongo.Database) DraftRepository {
	return &mongoDraftRepository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the session lookup index used by draft restore.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "session_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create draft session index: %w", err)
	}
	return nil
}

func (r *mongoDraftRepository) Save(ctx context.Context, draft *model.BookingDraft) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": draft.ID}, draft, opts); err != nil {
		return fmt.Errorf("failed to save booking draft: %w", err)
	}
	return nil
}

func (r *mongoDraftRepository) FindByID(ctx context.Context, id string) (*model.BookingDraft, error) {
	var draft model.BookingDraft
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&draft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to find booking draft: %w", err)
	}
	return &draft, nil
}

func (r *mongoDraftRepository) FindBySession(ctx context.Context, sessionID string) (*model.BookingDraft, error) {
	var draft model.BookingDraft
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&draft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to find booking draft by session: %w", err)
	}
	return &draft, nil
}

func (r *mongoDraftRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}
