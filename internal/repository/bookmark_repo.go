package repository

import (
	"Nokoroa/internal/model"
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type BookmarkRepo interface {
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	DeleteBookmark(ctx context.Context, id uint64) error
	GetBookmark(ctx context.Context, userID, postID uint64) (*model.Bookmark, error)
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Bookmark, int64, error)
	CountByPost(ctx context.Context, postID uint64) (int64, error)
	CountByPostIds(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

type BookmarkRepoImpl struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) BookmarkRepo {
	return &BookmarkRepoImpl{db: db}
}

func (s *BookmarkRepoImpl) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	return s.db.WithContext(ctx).Create(bookmark).Error
}

func (s *BookmarkRepoImpl) DeleteBookmark(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Bookmark{}, id).Error
}

func (s *BookmarkRepoImpl) GetBookmark(ctx context.Context, userID, postID uint64) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

// ListByUser 返回用户的收藏分页及总数，计数与取页并发执行。
func (s *BookmarkRepoImpl) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Bookmark, int64, error) {
	var (
		bookmarks []*model.Bookmark
		total     int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ?", userID).
			Preload("Post").
			Preload("Post.Author").Preload("Post.Location").Preload("Post.Tags").
			Order("created_at DESC").
			Order("id ASC").
			Limit(limit).
			Offset(offset).
			Find(&bookmarks).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&model.Bookmark{}).
			Where("user_id = ?", userID).
			Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return bookmarks, total, nil
}

func (s *BookmarkRepoImpl) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPostIds 批量统计收藏数，结果按投稿 ID 索引。
func (s *BookmarkRepoImpl) CountByPostIds(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PostID uint64
		Count  int64
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.PostID] = r.Count
	}
	return counts, nil
}
