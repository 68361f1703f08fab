package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"campus-board/literals"
	"campus-board/models"
)

type VoteRepository struct {
	col *mongo.Collection
}

func NewVoteRepository(db *mongo.Database) *VoteRepository {
	return &VoteRepository{col: db.Collection(literals.VOTE_TABLE)}
}

// FindByVoter returns voter's votes on the given items, keyed by VoteKey(itemID).
// Items the voter has not voted on are absent from the map.
func (r *VoteRepository) FindByVoter(ctx context.Context, voter string, itemIDs []any) (map[string]*models.Vote, error) {
	out := make(map[string]*models.Vote, len(itemIDs))
	if voter == "" || len(itemIDs) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx, bson.M{
		literals.FIELD_VOTER:     voter,
		literals.FIELD_VOTE_ITEM: bson.M{"$in": itemIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var v models.Vote
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out[VoteKey(v.ItemID)] = &v
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// VoteKey normalizes an item id so ids decoded as int32 and int64 map to the same key.
func VoteKey(itemID any) string {
	return fmt.Sprint(itemID)
}
