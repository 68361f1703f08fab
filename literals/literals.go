// Package literals holds the canonical table and field names shared by the
// repositories, the projector and the HTTP layer.
package literals

// Tables (one Mongo collection per item type).
const (
	POST_TABLE    = "post"
	LINK_TABLE    = "link"
	CLASS_TABLE   = "class"
	COMMENT_TABLE = "comment"
	RATING_TABLE  = "rating"
	VOTE_TABLE    = "vote"
)

// Item fields.
const (
	FIELD_ID             = "id"
	FIELD_TITLE          = "title"
	FIELD_NETVOTES       = "netVotes"
	FIELD_AUTHOR         = "author"
	FIELD_ADDED_BY       = "addedBy"
	FIELD_TIMESTAMP      = "timestamp"
	FIELD_DATETIME       = "datetime"
	FIELD_CONTENT        = "content"
	FIELD_SUMMARY        = "summary"
	FIELD_TAGS           = "tags"
	FIELD_LINK           = "link"
	FIELD_COURSE_CODE    = "courseCode"
	FIELD_AVERAGE_RATING = "averageRating"
	FIELD_PARENT         = "parent"
	FIELD_PARENT_POST    = "parentPost"
	FIELD_PARENT_COMMENT = "parentComment"
)

// Vote fields.
const (
	FIELD_VOTE_ITEM  = "itemId"
	FIELD_VOTER      = "voter"
	FIELD_VOTE_VALUE = "voteValue"
)
