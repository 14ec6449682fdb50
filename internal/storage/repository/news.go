package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campusdk/campusportalen/internal/models"
)

// CreateNews inserts a new news post and returns its generated uid.
func (s *Storage) CreateNews(ctx context.Context, item models.News) (string, error) {
	const op = "storage.CreateNews"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO news (title, text, image_url, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid`
	err := s.Db.QueryRowContext(ctx, query,
		item.Title, item.Text, item.ImageURL, item.CreatedBy, item.CreatedAt).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListNews returns at most limit news posts, newest first.
func (s *Storage) ListNews(ctx context.Context, limit int) ([]*models.News, error) {
	const op = "storage.ListNews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, text, image_url, created_by, created_at
			  FROM news
			  ORDER BY created_at DESC
			  LIMIT $1`
	rows, err := s.Db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.News
	for rows.Next() {
		n := &models.News{}
		var imageURL sql.NullString
		if err = rows.Scan(&n.UID, &n.Title, &n.Text, &imageURL,
			&n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if imageURL.Valid {
			n.ImageURL = &imageURL.String
		}
		result = append(result, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
