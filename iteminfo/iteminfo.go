// Package iteminfo shapes stored item rows into response DTOs.
//
// It is used while walking a result set: the caller hands each row and the
// current user's vote on it to GeneralInfo, which appends one DTO per row to a
// shared Sink.
package iteminfo

import (
	"math"
	"reflect"

	"campus-board/dto"
	"campus-board/internal/logger"
	"campus-board/literals"
	"campus-board/models"
)

// ItemType is the kind of item a row holds. Its value is the table name.
type ItemType string

const (
	Post    ItemType = literals.POST_TABLE
	Link    ItemType = literals.LINK_TABLE
	Class   ItemType = literals.CLASS_TABLE
	Comment ItemType = literals.COMMENT_TABLE
	Rating  ItemType = literals.RATING_TABLE
)

// ItemTypes lists every recognized item type.
var ItemTypes = []ItemType{Post, Link, Class, Comment, Rating}

// Voted polarity values.
const (
	VotedPositive = "positive"
	VotedNegative = "negative"
)

// ParseItemType returns the ItemType named by s.
func ParseItemType(s string) (ItemType, bool) {
	t := ItemType(s)
	return t, t.Valid()
}

// Valid reports whether t is one of ItemTypes.
func (t ItemType) Valid() bool {
	switch t {
	case Post, Link, Class, Comment, Rating:
		return true
	}
	return false
}

// Votable reports whether DTOs of this type carry a voteValue.
func (t ItemType) Votable() bool {
	return t == Post || t == Link
}

func (t ItemType) String() string { return string(t) }

// Sink accumulates projected items across repeated GeneralInfo calls.
// It is not safe for concurrent use.
type Sink struct {
	items []dto.ItemInfo
}

// NewSink returns an empty sink with room for n items.
func NewSink(n int) *Sink {
	return &Sink{items: make([]dto.ItemInfo, 0, n)}
}

func (s *Sink) append(info dto.ItemInfo) {
	s.items = append(s.items, info)
}

// Items returns the accumulated items in append order.
func (s *Sink) Items() []dto.ItemInfo {
	if s == nil {
		return nil
	}
	return s.items
}

// Len returns the number of accumulated items.
func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// GeneralInfo projects item into the DTO for itemType and appends it to sink.
//
// vote is the current user's vote on item, or nil when the user has not voted.
// An unrecognized itemType appends nothing.
func GeneralInfo(item, vote models.Row, itemType ItemType, sink *Sink) {
	if sink == nil {
		return
	}

	voted := HasVoted(vote)
	var voteValue any
	if itemType.Votable() {
		voteValue = VoteValue(vote)
	}

	var info dto.ItemInfo
	switch itemType {
	case Post:
		info = PostInfo(item, voteValue, voted)
	case Link:
		info = LinkInfo(item, voteValue, voted)
	case Class:
		info = ClassInfo(item, voted)
	case Comment:
		info = CommentInfo(item, voted)
	case Rating:
		info = RatingInfo(item, voted)
	default:
		logger.DebugWithFields("skipping row of unknown item type", logger.Fields{
			"item_type": string(itemType),
		})
		return
	}
	sink.append(info)
}

// HasVoted returns the polarity of vote, or "" if there is no vote.
func HasVoted(vote models.Row) string {
	if isNilRow(vote) {
		return ""
	}
	if truthy(vote.GetValue(literals.FIELD_VOTE_VALUE)) {
		return VotedPositive
	}
	return VotedNegative
}

// VoteValue returns the raw vote value, or 0 if there is no vote.
func VoteValue(vote models.Row) any {
	if isNilRow(vote) {
		return 0
	}
	return vote.GetValue(literals.FIELD_VOTE_VALUE)
}

func PostInfo(item models.Row, voteValue any, voted string) dto.PostInfo {
	return dto.PostInfo{
		ID:        item.GetValue(literals.FIELD_ID),
		Title:     item.GetValue(literals.FIELD_TITLE),
		Votes:     item.GetValue(literals.FIELD_NETVOTES),
		Author:    item.GetValue(literals.FIELD_AUTHOR),
		Date:      item.GetValue(literals.FIELD_TIMESTAMP),
		Summary:   item.GetValue(literals.FIELD_CONTENT),
		Type:      literals.POST_TABLE,
		Tags:      item.GetValue(literals.FIELD_TAGS),
		Voted:     voted,
		VoteValue: voteValue,
	}
}

func LinkInfo(item models.Row, voteValue any, voted string) dto.LinkInfo {
	return dto.LinkInfo{
		ID:        item.GetValue(literals.FIELD_ID),
		Title:     item.GetValue(literals.FIELD_TITLE),
		Votes:     item.GetValue(literals.FIELD_NETVOTES),
		Author:    item.GetValue(literals.FIELD_ADDED_BY),
		Date:      item.GetValue(literals.FIELD_DATETIME),
		Summary:   item.GetValue(literals.FIELD_SUMMARY),
		Type:      literals.LINK_TABLE,
		Tags:      item.GetValue(literals.FIELD_TAGS),
		URL:       item.GetValue(literals.FIELD_LINK),
		Voted:     voted,
		VoteValue: voteValue,
	}
}

func ClassInfo(item models.Row, voted string) dto.ClassInfo {
	return dto.ClassInfo{
		ID:         item.GetValue(literals.FIELD_ID),
		Title:      item.GetValue(literals.FIELD_TITLE),
		CourseCode: item.GetValue(literals.FIELD_COURSE_CODE),
		Rating:     item.GetValue(literals.FIELD_AVERAGE_RATING),
		Author:     item.GetValue(literals.FIELD_ADDED_BY),
		Summary:    item.GetValue(literals.FIELD_SUMMARY),
		Type:       literals.CLASS_TABLE,
		Tags:       item.GetValue(literals.FIELD_TAGS),
		Voted:      voted,
	}
}

func CommentInfo(item models.Row, voted string) dto.CommentInfo {
	return dto.CommentInfo{
		ID:            item.GetValue(literals.FIELD_ID),
		Author:        item.GetValue(literals.FIELD_AUTHOR),
		Content:       item.GetValue(literals.FIELD_CONTENT),
		NetVotes:      item.GetValue(literals.FIELD_NETVOTES),
		Parent:        item.GetValue(literals.FIELD_PARENT_POST),
		ParentComment: item.GetValue(literals.FIELD_PARENT_COMMENT),
		Type:          literals.COMMENT_TABLE,
		Date:          item.GetValue(literals.FIELD_TIMESTAMP),
		Voted:         voted,
	}
}

func RatingInfo(item models.Row, voted string) dto.RatingInfo {
	return dto.RatingInfo{
		Parent:  item.GetValue(literals.FIELD_PARENT),
		ID:      item.GetValue(literals.FIELD_ID),
		Rating:  item.GetValue(literals.FIELD_AVERAGE_RATING),
		Author:  item.GetValue(literals.FIELD_AUTHOR),
		Content: item.GetValue(literals.FIELD_CONTENT),
		Date:    item.GetValue(literals.FIELD_DATETIME),
		Type:    literals.RATING_TABLE,
		Voted:   voted,
	}
}

// isNilRow also catches typed nils such as (*models.Vote)(nil).
func isNilRow(r models.Row) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// truthy: nil, false, numeric zero, NaN and "" are false; everything else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return true
}
