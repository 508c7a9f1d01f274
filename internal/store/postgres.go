package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"local.dev/lyntr-backend/internal/models"
)

// OpenPostgres dials the database. The DSN comes from config.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// PostgresStore implements LyntStore on top of gorm.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Lynt{}, &models.LyntLike{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db.Exec("CREATE INDEX IF NOT EXISTS idx_lynts_created_at ON lynts(created_at DESC)")
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Create(ctx context.Context, l models.Lynt) (models.Lynt, error) {
	if err := s.db.WithContext(ctx).Create(&l).Error; err != nil {
		return models.Lynt{}, fmt.Errorf("insert lynt: %w", err)
	}
	return l, nil
}

func (s *PostgresStore) ResolveRepostTarget(ctx context.Context, id string) (string, error) {
	var row struct{ ID string }
	err := s.db.WithContext(ctx).
		Model(&models.Lynt{}).
		Select("id").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup repost target: %w", err)
	}
	return row.ID, nil
}

func (s *PostgresStore) FetchForRead(ctx context.Context, id, viewerID string) (models.LyntView, error) {
	var l models.Lynt
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LyntView{}, ErrNotFound
	}
	if err != nil {
		return models.LyntView{}, fmt.Errorf("fetch lynt: %w", err)
	}

	// Left-join semantics: a missing author row degrades to a bare id.
	author := models.User{ID: l.UserID}
	err = s.db.WithContext(ctx).Where("id = ?", l.UserID).Take(&author).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LyntView{}, fmt.Errorf("fetch author: %w", err)
	}

	var likeCount int64
	if err := s.db.WithContext(ctx).
		Model(&models.LyntLike{}).
		Where("lynt_id = ?", id).
		Count(&likeCount).Error; err != nil {
		return models.LyntView{}, fmt.Errorf("count likes: %w", err)
	}

	var mine int64
	if err := s.db.WithContext(ctx).
		Model(&models.LyntLike{}).
		Where("lynt_id = ? AND user_id = ?", id, viewerID).
		Count(&mine).Error; err != nil {
		return models.LyntView{}, fmt.Errorf("check viewer like: %w", err)
	}

	return models.LyntView{
		ID:        l.ID,
		Content:   l.Content,
		CreatedAt: l.CreatedAt,
		HasLink:   l.HasLink,
		HasImage:  l.HasImage,
		Reposted:  l.Reposted,
		Parent:    l.Parent,
		Author:    author,
		LikeCount: likeCount,
		LikedByMe: mine > 0,
		Views:     l.Views,
	}, nil
}

func (s *PostgresStore) IncrementViews(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Lynt{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("increment views: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
