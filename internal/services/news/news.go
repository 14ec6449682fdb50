// Package services contains the business logic for news posts.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/campusdk/campusportalen/internal/models"
)

// listLimit caps the public news listing.
const listLimit = 20

const listCacheKey = "news:list"

// NewsRepository defines the news operations the service needs from the
// store.
type NewsRepository interface {
	// CreateNews saves a new post and returns its uid.
	CreateNews(ctx context.Context, item models.News) (string, error)
	// ListNews returns at most limit posts, newest first.
	ListNews(ctx context.Context, limit int) ([]*models.News, error)
}

// Cache describes the caching operations used by the service.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// NewsService implements the capped newest-first listing and creation of
// news posts.
type NewsService struct {
	repo  NewsRepository
	cache Cache
	log   *slog.Logger
}

// NewNewsService creates a new NewsService.
func NewNewsService(repo NewsRepository, cache Cache, log *slog.Logger) *NewsService {
	return &NewsService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List returns the newest posts, never more than 20, newest first.
func (s *NewsService) List(ctx context.Context) ([]*models.News, error) {
	var cached []*models.News
	found, err := s.cache.Get(listCacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		s.log.Warn("failed to read news from cache", slog.String("key", listCacheKey), slog.Any("err", err))
	}

	items, err := s.repo.ListNews(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(listCacheKey, items, time.Minute); err != nil {
		s.log.Warn("failed to cache news", slog.String("key", listCacheKey), slog.Any("err", err))
	}
	return items, nil
}

// Create stores a new post published by createdBy and invalidates the
// cached listing.
func (s *NewsService) Create(ctx context.Context, createdBy string, req models.DummyNews) (string, error) {
	item := models.News{
		Title:     req.Title,
		Text:      req.Text,
		ImageURL:  req.ImageURL,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	uid, err := s.repo.CreateNews(ctx, item)
	if err != nil {
		return "", err
	}
	s.log.Info("created news post", slog.String("uid", uid), slog.String("title", req.Title))

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate news cache", slog.String("key", listCacheKey), slog.Any("err", err))
	}
	return uid, nil
}
