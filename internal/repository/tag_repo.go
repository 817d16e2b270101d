package repository

import (
	"Nokoroa/internal/model"
	"Nokoroa/internal/pkg/util"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagStat 标签使用次数聚合行
type TagStat struct {
	Name  string
	Slug  string
	Count int64
}

type TagRepo interface {
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error)
	ListTagStats(ctx context.Context) ([]*TagStat, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error) {
	// 创建所有标签，使用 OnConflict DoNothing 避免重复创建
	for _, tagName := range tagNames {
		tag := model.Tag{
			Name:      tagName,
			Slug:      util.Slugify(tagName),
			CreatedAt: time.Now(),
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
		if err != nil {
			return nil, err
		}
	}

	var tags []*model.Tag
	err := s.db.WithContext(ctx).Where("name IN ?", tagNames).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	return tags, nil
}

// ListTagStats 统计公开投稿中每个标签的使用次数，按次数降序。
func (s *tagRepoImpl) ListTagStats(ctx context.Context) ([]*TagStat, error) {
	var stats []*TagStat
	err := s.db.WithContext(ctx).
		Model(&model.Tag{}).
		Select("tags.name AS name, tags.slug AS slug, COUNT(post_tags.post_id) AS count").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("JOIN posts ON posts.id = post_tags.post_id AND posts.is_public = ?", true).
		Group("tags.id").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
