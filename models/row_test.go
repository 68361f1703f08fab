package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-board/literals"
)

func TestDocumentGetValue(t *testing.T) {
	d := Document{literals.FIELD_TITLE: "T", literals.FIELD_TAGS: []string{"x"}}

	assert.Equal(t, "T", d.GetValue(literals.FIELD_TITLE))
	assert.Equal(t, []string{"x"}, d.GetValue(literals.FIELD_TAGS))
	assert.Nil(t, d.GetValue(literals.FIELD_SUMMARY))

	var empty Document
	assert.Nil(t, empty.GetValue(literals.FIELD_ID))
}

func TestVoteGetValue(t *testing.T) {
	v := &Vote{ItemID: "p1", Voter: "u1", Value: int32(1)}

	assert.Equal(t, "p1", v.GetValue(literals.FIELD_VOTE_ITEM))
	assert.Equal(t, "u1", v.GetValue(literals.FIELD_VOTER))
	assert.Equal(t, int32(1), v.GetValue(literals.FIELD_VOTE_VALUE))
	assert.Nil(t, v.GetValue("unknown"))

	var none *Vote
	assert.Nil(t, none.GetValue(literals.FIELD_VOTE_VALUE))
}
