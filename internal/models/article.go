package models

import (
	"time"
)

// DefaultArticleImgURL is stored when an article is posted without an image
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents an article. Body is empty in listings, which omit it.
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	Body          string    `json:"body,omitempty" db:"body"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// NewArticle is the request body of POST /api/articles
type NewArticle struct {
	Author        string `json:"author" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	Topic         string `json:"topic" binding:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// ArticleSort is a column the article listing can be ordered by
type ArticleSort string

const (
	SortByCreatedAt    ArticleSort = "created_at"
	SortByVotes        ArticleSort = "votes"
	SortByTitle        ArticleSort = "title"
	SortByTopic        ArticleSort = "topic"
	SortByAuthor       ArticleSort = "author"
	SortByCommentCount ArticleSort = "comment_count"
)

// ValidArticleSorts defines allowed sort_by values
var ValidArticleSorts = map[ArticleSort]bool{
	SortByCreatedAt:    true,
	SortByVotes:        true,
	SortByTitle:        true,
	SortByTopic:        true,
	SortByAuthor:       true,
	SortByCommentCount: true,
}

// SortOrder is a listing direction
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Listing defaults
const (
	DefaultArticleSort  = SortByCreatedAt
	DefaultSortOrder    = OrderDesc
	DefaultArticleLimit = 10
	DefaultArticlePage  = 1
)

// ArticleFilter is a validated article listing request
type ArticleFilter struct {
	SortBy ArticleSort
	Order  SortOrder
	Topic  string // empty means no topic filter

	// Limit and Page only apply when Paginate is set
	Paginate bool
	Limit    int
	Page     int
}

// Offset returns the number of rows skipped before the requested page
func (f ArticleFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ArticleList is a page of articles plus the number of articles matching
// the filter across all pages
type ArticleList struct {
	Articles   []*Article `json:"articles"`
	TotalCount int        `json:"total_count"`
}
