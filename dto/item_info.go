package dto

// ItemInfo is the response shape of one projected item.
// Every concrete DTO reports its canonical table name through ItemType.
type ItemInfo interface {
	ItemType() string
}

// Row values are passed through untouched, so the fields below are typed any:
// ids, dates and tags keep whatever type the store returned.

// PostInfo is a question/discussion post
type PostInfo struct {
	ID        any    `json:"id"`
	Title     any    `json:"title"`
	Votes     any    `json:"votes"`
	Author    any    `json:"author"`
	Date      any    `json:"date"`
	Summary   any    `json:"summary"`
	Type      string `json:"type"`
	Tags      any    `json:"tags"`
	Voted     string `json:"voted,omitempty"`
	VoteValue any    `json:"voteValue"`
}

func (p PostInfo) ItemType() string { return p.Type }

// LinkInfo is a shared external link
type LinkInfo struct {
	ID        any    `json:"id"`
	Title     any    `json:"title"`
	Votes     any    `json:"votes"`
	Author    any    `json:"author"`
	Date      any    `json:"date"`
	Summary   any    `json:"summary"`
	Type      string `json:"type"`
	Tags      any    `json:"tags"`
	URL       any    `json:"url"`
	Voted     string `json:"voted,omitempty"`
	VoteValue any    `json:"voteValue"`
}

func (l LinkInfo) ItemType() string { return l.Type }

// ClassInfo is a course entry. Classes are rated, not voted on, so there is no VoteValue.
type ClassInfo struct {
	ID         any    `json:"id"`
	Title      any    `json:"title"`
	CourseCode any    `json:"courseCode"`
	Rating     any    `json:"rating"`
	Author     any    `json:"author"`
	Summary    any    `json:"summary"`
	Type       string `json:"type"`
	Tags       any    `json:"tags"`
	Voted      string `json:"voted,omitempty"`
}

func (c ClassInfo) ItemType() string { return c.Type }

// CommentInfo is a comment on a post, optionally replying to another comment
type CommentInfo struct {
	ID            any    `json:"id"`
	Author        any    `json:"author"`
	Content       any    `json:"content"`
	NetVotes      any    `json:"netVotes"`
	Parent        any    `json:"parent"`
	ParentComment any    `json:"parentComment"`
	Type          string `json:"type"`
	Date          any    `json:"date"`
	Voted         string `json:"voted,omitempty"`
}

func (c CommentInfo) ItemType() string { return c.Type }

// RatingInfo is a single rating left on a class
type RatingInfo struct {
	Parent  any    `json:"parent"`
	ID      any    `json:"id"`
	Rating  any    `json:"rating"`
	Author  any    `json:"author"`
	Content any    `json:"content"`
	Date    any    `json:"date"`
	Type    string `json:"type"`
	Voted   string `json:"voted,omitempty"`
}

func (r RatingInfo) ItemType() string { return r.Type }
