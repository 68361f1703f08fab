package models

import (
	"time"

	"campus-board/literals"
)

// Vote is a single user's vote on an item
// Collection: vote
//
//	voteValue: truthy = up vote, falsy = down vote
type Vote struct {
	// ID is whatever the importer stored (ObjectID or a legacy string/int id).
	ID        any                `bson:"_id,omitempty" json:"-"`
	ItemID    any                `bson:"itemId" json:"item_id"`
	Voter     string             `bson:"voter" json:"voter"`
	Value     any                `bson:"voteValue" json:"vote_value"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at"`
}

// GetValue implements Row so a vote can be handed to the projector as-is.
func (v *Vote) GetValue(field string) any {
	if v == nil {
		return nil
	}
	switch field {
	case literals.FIELD_VOTE_ITEM:
		return v.ItemID
	case literals.FIELD_VOTER:
		return v.Voter
	case literals.FIELD_VOTE_VALUE:
		return v.Value
	default:
		return nil
	}
}
