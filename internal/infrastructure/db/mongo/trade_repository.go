package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradelog/trade-journal/internal/core/domain"
)

const tradesCollection = "trades"

// TradeRepository persists trades in MongoDB.
type TradeRepository struct {
	coll *mongo.Collection
}

func NewTradeRepository(db *mongo.Database) *TradeRepository {
	return &TradeRepository{coll: db.Collection(tradesCollection)}
}

type mongoTrade struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	Symbol     string             `bson:"symbol"`
	Type       string             `bson:"type"`
	EntryPrice float64            `bson:"entry_price"`
	ExitPrice  *float64           `bson:"exit_price,omitempty"`
	Status     string             `bson:"status"`
	Notes      string             `bson:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *TradeRepository) Create(ctx context.Context, t *domain.Trade) (*domain.Trade, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTrade{
		UserID:     t.UserID,
		Symbol:     t.Symbol,
		Type:       string(t.Type),
		EntryPrice: t.EntryPrice,
		ExitPrice:  t.ExitPrice,
		Status:     string(t.Status),
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert trade: %w", err)
	}

	created := *t
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByID returns domain.ErrTradeNotFound for both a missing document and
// a malformed id: a caller cannot tell the two apart and should not.
func (r *TradeRepository) FindByID(ctx context.Context, id string) (*domain.Trade, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTradeNotFound
	}

	var mt mongoTrade
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, fmt.Errorf("find trade: %w", err)
	}
	return toDomainTrade(mt), nil
}

// ListByOwner returns every trade owned by ownerID. No sort is applied;
// documents come back in natural insertion order.
func (r *TradeRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Trade, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer cur.Close(ctx)

	trades := make([]domain.Trade, 0)
	for cur.Next(ctx) {
		var mt mongoTrade
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode trade: %w", err)
		}
		trades = append(trades, *toDomainTrade(mt))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list trades cursor: %w", err)
	}
	return trades, nil
}

// Update applies a $set of exactly the supplied fields plus updated_at and
// returns the post-update document. The owner field is never touched.
func (r *TradeRepository) Update(ctx context.Context, id string, upd domain.TradeUpdate) (*domain.Trade, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTradeNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Symbol != nil {
		set["symbol"] = *upd.Symbol
	}
	if upd.Type != nil {
		set["type"] = string(*upd.Type)
	}
	if upd.EntryPrice != nil {
		set["entry_price"] = *upd.EntryPrice
	}
	if upd.ExitPrice != nil {
		set["exit_price"] = *upd.ExitPrice
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	after := options.After
	var mt mongoTrade
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&mt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, fmt.Errorf("update trade: %w", err)
	}
	return toDomainTrade(mt), nil
}

func (r *TradeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTradeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every list query.
func (r *TradeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func toDomainTrade(mt mongoTrade) *domain.Trade {
	return &domain.Trade{
		ID:         mt.ID.Hex(),
		UserID:     mt.UserID,
		Symbol:     mt.Symbol,
		Type:       domain.TradeType(mt.Type),
		EntryPrice: mt.EntryPrice,
		ExitPrice:  mt.ExitPrice,
		Status:     domain.TradeStatus(mt.Status),
		Notes:      mt.Notes,
		CreatedAt:  mt.CreatedAt.UTC(),
		UpdatedAt:  mt.UpdatedAt.UTC(),
	}
}
