package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the request body of POST /api/articles/:article_id/comments
type NewComment struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// VoteUpdate is the request body of the vote PATCH endpoints. IncVotes is
// left untyped so that a non-numeric value reaches validation instead of
// failing JSON decoding.
type VoteUpdate struct {
	IncVotes interface{} `json:"inc_votes"`
}
