package iteminfo_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-board/dto"
	"campus-board/iteminfo"
	"campus-board/literals"
	"campus-board/models"
)

func postRow() models.Document {
	return models.Document{
		literals.FIELD_ID:        5,
		literals.FIELD_TITLE:     "T",
		literals.FIELD_NETVOTES:  3,
		literals.FIELD_AUTHOR:    "A",
		literals.FIELD_TIMESTAMP: 1000,
		literals.FIELD_CONTENT:   "C",
		literals.FIELD_TAGS:      []string{"x"},
	}
}

func fullRow() models.Document {
	return models.Document{
		literals.FIELD_ID:             "i1",
		literals.FIELD_TITLE:          "Title",
		literals.FIELD_NETVOTES:       7,
		literals.FIELD_AUTHOR:         "author",
		literals.FIELD_ADDED_BY:       "adder",
		literals.FIELD_TIMESTAMP:      "2017-03-27 10:00:00",
		literals.FIELD_DATETIME:       "2017-03-28 11:00:00",
		literals.FIELD_CONTENT:        "content",
		literals.FIELD_SUMMARY:        "summary",
		literals.FIELD_TAGS:           []string{"go"},
		literals.FIELD_LINK:           "https://example.com",
		literals.FIELD_COURSE_CODE:    "CISC 121",
		literals.FIELD_AVERAGE_RATING: 4.5,
		literals.FIELD_PARENT:         "c9",
		literals.FIELD_PARENT_POST:    "p1",
		literals.FIELD_PARENT_COMMENT: "cm2",
	}
}

func vote(value any) *models.Vote {
	return &models.Vote{ItemID: "i1", Voter: "u1", Value: value}
}

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestGeneralInfoPostExample(t *testing.T) {
	sink := iteminfo.NewSink(1)

	iteminfo.GeneralInfo(postRow(), vote(1), iteminfo.Post, sink)

	require.Equal(t, 1, sink.Len())
	assert.Equal(t, dto.PostInfo{
		ID:        5,
		Title:     "T",
		Votes:     3,
		Author:    "A",
		Date:      1000,
		Summary:   "C",
		Type:      "post",
		Tags:      []string{"x"},
		Voted:     "positive",
		VoteValue: 1,
	}, sink.Items()[0])
}

func TestGeneralInfoClassWithoutVote(t *testing.T) {
	sink := iteminfo.NewSink(1)

	iteminfo.GeneralInfo(fullRow(), nil, iteminfo.Class, sink)

	require.Equal(t, 1, sink.Len())
	got := toMap(t, sink.Items()[0])
	assert.NotContains(t, got, "voted")
	assert.NotContains(t, got, "voteValue")
	assert.Equal(t, "class", got["type"])
	assert.Equal(t, "CISC 121", got["courseCode"])
	assert.Equal(t, 4.5, got["rating"])
	assert.Equal(t, "adder", got["author"])
}

func TestGeneralInfoAppendsOnePerTypeWithCanonicalType(t *testing.T) {
	sink := iteminfo.NewSink(len(iteminfo.ItemTypes))

	for i, itemType := range iteminfo.ItemTypes {
		iteminfo.GeneralInfo(fullRow(), vote(true), itemType, sink)

		require.Equal(t, i+1, sink.Len())
		got := sink.Items()[i]
		assert.Equal(t, string(itemType), got.ItemType())
		assert.Equal(t, string(itemType), toMap(t, got)["type"])
	}
}

func TestGeneralInfoVotedPolarity(t *testing.T) {
	testCases := []struct {
		name      string
		vote      models.Row
		wantVoted string
	}{
		{name: "no vote", vote: nil, wantVoted: ""},
		{name: "typed nil vote", vote: (*models.Vote)(nil), wantVoted: ""},
		{name: "true", vote: vote(true), wantVoted: iteminfo.VotedPositive},
		{name: "one", vote: vote(int32(1)), wantVoted: iteminfo.VotedPositive},
		{name: "minus one", vote: vote(int64(-1)), wantVoted: iteminfo.VotedPositive},
		{name: "false", vote: vote(false), wantVoted: iteminfo.VotedNegative},
		{name: "zero", vote: vote(0), wantVoted: iteminfo.VotedNegative},
		{name: "nan", vote: vote(math.NaN()), wantVoted: iteminfo.VotedNegative},
		{name: "empty string", vote: vote(""), wantVoted: iteminfo.VotedNegative},
		{name: "missing value", vote: models.Document{}, wantVoted: iteminfo.VotedNegative},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			for _, itemType := range iteminfo.ItemTypes {
				sink := iteminfo.NewSink(1)
				iteminfo.GeneralInfo(fullRow(), testCase.vote, itemType, sink)

				require.Equal(t, 1, sink.Len())
				got := toMap(t, sink.Items()[0])
				if testCase.wantVoted == "" {
					assert.NotContains(t, got, "voted", itemType)
				} else {
					assert.Equal(t, testCase.wantVoted, got["voted"], itemType)
				}
			}
		})
	}
}

func TestGeneralInfoVoteValueOnlyForPostAndLink(t *testing.T) {
	for _, itemType := range iteminfo.ItemTypes {
		withVote := iteminfo.NewSink(1)
		iteminfo.GeneralInfo(fullRow(), vote(-1), itemType, withVote)
		withoutVote := iteminfo.NewSink(1)
		iteminfo.GeneralInfo(fullRow(), nil, itemType, withoutVote)

		voted := toMap(t, withVote.Items()[0])
		unvoted := toMap(t, withoutVote.Items()[0])
		if itemType.Votable() {
			assert.Equal(t, float64(-1), voted["voteValue"], itemType)
			assert.Equal(t, float64(0), unvoted["voteValue"], itemType)
		} else {
			assert.NotContains(t, voted, "voteValue", itemType)
			assert.NotContains(t, unvoted, "voteValue", itemType)
		}
	}
}

func TestGeneralInfoUnknownTypeIsNoop(t *testing.T) {
	sink := iteminfo.NewSink(0)

	assert.NotPanics(t, func() {
		iteminfo.GeneralInfo(fullRow(), vote(1), iteminfo.ItemType("bogus"), sink)
	})
	assert.Equal(t, 0, sink.Len())
	assert.Empty(t, sink.Items())
}

func TestGeneralInfoNilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		iteminfo.GeneralInfo(fullRow(), nil, iteminfo.Post, nil)
	})
}

func TestGeneralInfoMissingFieldsPassThroughAsNil(t *testing.T) {
	sink := iteminfo.NewSink(1)

	iteminfo.GeneralInfo(models.Document{literals.FIELD_ID: "only-id"}, nil, iteminfo.Link, sink)

	require.Equal(t, 1, sink.Len())
	link, ok := sink.Items()[0].(dto.LinkInfo)
	require.True(t, ok)
	assert.Equal(t, "only-id", link.ID)
	assert.Nil(t, link.Title)
	assert.Nil(t, link.URL)
	assert.Equal(t, 0, link.VoteValue)
}

func TestPerTypeFieldMapping(t *testing.T) {
	row := fullRow()

	link := iteminfo.LinkInfo(row, 1, iteminfo.VotedPositive)
	assert.Equal(t, "adder", link.Author)
	assert.Equal(t, "2017-03-28 11:00:00", link.Date)
	assert.Equal(t, "summary", link.Summary)
	assert.Equal(t, "https://example.com", link.URL)
	assert.Equal(t, 7, link.Votes)

	comment := iteminfo.CommentInfo(row, iteminfo.VotedNegative)
	assert.Equal(t, "author", comment.Author)
	assert.Equal(t, "content", comment.Content)
	assert.Equal(t, 7, comment.NetVotes)
	assert.Equal(t, "p1", comment.Parent)
	assert.Equal(t, "cm2", comment.ParentComment)
	assert.Equal(t, "2017-03-27 10:00:00", comment.Date)

	rating := iteminfo.RatingInfo(row, "")
	assert.Equal(t, "c9", rating.Parent)
	assert.Equal(t, 4.5, rating.Rating)
	assert.Equal(t, "author", rating.Author)
	assert.Equal(t, "2017-03-28 11:00:00", rating.Date)
	assert.Equal(t, "rating", rating.Type)
}

func TestParseItemType(t *testing.T) {
	for _, itemType := range iteminfo.ItemTypes {
		got, ok := iteminfo.ParseItemType(itemType.String())
		assert.True(t, ok)
		assert.Equal(t, itemType, got)
	}

	_, ok := iteminfo.ParseItemType("bogus")
	assert.False(t, ok)
	_, ok = iteminfo.ParseItemType(literals.VOTE_TABLE)
	assert.False(t, ok)
}
