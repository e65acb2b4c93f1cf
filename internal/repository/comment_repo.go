package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

const commentColumns = "comment_id, article_id, body, votes, author, created_at"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1 ORDER BY created_at DESC`

	comments := []*models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, articleID); err != nil {
		return nil, fmt.Errorf("failed to list comments for article %d: %w", articleID, err)
	}
	return comments, nil
}

// Create inserts a comment and returns the stored row
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	var created models.Comment
	if err := r.db.GetContext(ctx, &created, query, comment.ArticleID, comment.Author, comment.Body); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &created, nil
}

// UpdateVotes adds delta to the comment's votes and returns the updated row
func (r *commentRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	query := `UPDATE comments SET votes = votes + $1 WHERE comment_id = $2 RETURNING ` + commentColumns

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, delta, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update votes for comment %d: %w", id, err)
	}
	return &comment, nil
}

// Delete removes a comment, reporting whether a row was affected
func (r *commentRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM comments")
	return count, err
}
