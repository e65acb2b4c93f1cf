package repository

import (
	"fmt"
	"strings"

	"github.com/news-api/internal/models"
)

// articleSortColumns maps every accepted sort key to the SQL expression it
// orders by. Only these strings are ever interpolated into a query.
var articleSortColumns = map[models.ArticleSort]string{
	models.SortByCreatedAt:    "articles.created_at",
	models.SortByVotes:        "articles.votes",
	models.SortByTitle:        "articles.title",
	models.SortByTopic:        "articles.topic",
	models.SortByAuthor:       "articles.author",
	models.SortByCommentCount: "comment_count",
}

var sortDirections = map[models.SortOrder]string{
	models.OrderAsc:  "ASC",
	models.OrderDesc: "DESC",
}

const listArticlesSelect = `SELECT articles.article_id, articles.author, articles.title, articles.topic,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

// BuildListArticlesQuery assembles the listing query for f. Values are
// always bound as parameters.
func BuildListArticlesQuery(f models.ArticleFilter) (string, []interface{}, error) {
	column, ok := articleSortColumns[f.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort column %q", f.SortBy)
	}
	direction, ok := sortDirections[f.Order]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort order %q", f.Order)
	}

	var b strings.Builder
	var args []interface{}

	b.WriteString(listArticlesSelect)
	if f.Topic != "" {
		args = append(args, f.Topic)
		fmt.Fprintf(&b, "\nWHERE articles.topic = $%d", len(args))
	}
	b.WriteString("\nGROUP BY articles.article_id")
	fmt.Fprintf(&b, "\nORDER BY %s %s", column, direction)

	if f.Paginate {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, "\nLIMIT $%d", len(args))
		args = append(args, f.Offset())
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}

	return b.String(), args, nil
}

// BuildCountArticlesQuery counts the articles matching f's topic filter,
// ignoring sort and pagination
func BuildCountArticlesQuery(f models.ArticleFilter) (string, []interface{}) {
	if f.Topic == "" {
		return "SELECT COUNT(*) FROM articles", nil
	}
	return "SELECT COUNT(*) FROM articles WHERE articles.topic = $1", []interface{}{f.Topic}
}
