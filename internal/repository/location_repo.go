package repository

import (
	"Nokoroa/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LocationRepo interface {
	GetOrCreateLocation(ctx context.Context, location *model.Location) (*model.Location, error)
	ListUsedByPublicPosts(ctx context.Context) ([]*model.Location, error)
}

type locationRepoImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepo {
	return &locationRepoImpl{db: db}
}

// GetOrCreateLocation 按名称复用已有地点，坐标以已存在的记录为准。
func (s *locationRepoImpl) GetOrCreateLocation(ctx context.Context, location *model.Location) (*model.Location, error) {
	var existing model.Location
	err := s.db.WithContext(ctx).Where("name = ?", location.Name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err = s.db.WithContext(ctx).Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// ListUsedByPublicPosts 列出至少被一篇公开投稿引用的地点。
func (s *locationRepoImpl) ListUsedByPublicPosts(ctx context.Context) ([]*model.Location, error) {
	var locations []*model.Location
	err := s.db.WithContext(ctx).
		Model(&model.Location{}).
		Distinct("locations.*").
		Joins("JOIN posts ON posts.location_id = locations.id AND posts.is_public = ?", true).
		Order("locations.name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
