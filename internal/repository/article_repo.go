package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List returns the articles matching filter, without bodies
func (r *articleRepo) List(ctx context.Context, filter models.ArticleFilter) ([]*models.Article, error) {
	query, args, err := BuildListArticlesQuery(filter)
	if err != nil {
		return nil, err
	}

	articles := []*models.Article{}
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// CountMatching returns the number of articles matching filter across all pages
func (r *articleRepo) CountMatching(ctx context.Context, filter models.ArticleFilter) (int, error) {
	query, args := BuildCountArticlesQuery(filter)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

// GetByID retrieves an article with its body and comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT articles.article_id, articles.author, articles.title, articles.body, articles.topic,
			articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article models.Article
	err := r.db.GetContext(ctx, &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}
	return &article, nil
}

// Create inserts a new article and returns its generated id
func (r *articleRepo) Create(ctx context.Context, article *models.Article) (int, error) {
	query := `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id
	`

	var id int
	err := r.db.QueryRowxContext(ctx, query,
		article.Author, article.Title, article.Body, article.Topic, article.ArticleImgURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create article: %w", err)
	}
	return id, nil
}

// UpdateVotes adds delta to the article's votes in a single statement and
// returns the updated row with its comment count
func (r *articleRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + $1
			WHERE article_id = $2
			RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url
		)
		SELECT updated.article_id, updated.author, updated.title, updated.body, updated.topic,
			updated.created_at, updated.votes, updated.article_img_url,
			(SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id) AS comment_count
		FROM updated
	`

	var article models.Article
	err := r.db.GetContext(ctx, &article, query, delta, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update votes for article %d: %w", id, err)
	}
	return &article, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles")
	return count, err
}
