package repository

import (
	"Nokoroa/internal/model"
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PostSearchFilter 规范化后的搜索过滤条件。
// Limit/Offset 在进入仓储层之前已经完成校验。
type PostSearchFilter struct {
	Query    string
	Tags     []string
	Location string
	AuthorID uint64
	Limit    int
	Offset   int
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tags []*model.PostTag) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post, tags []*model.PostTag, tagsChanged bool) error
	DeletePost(ctx context.Context, id uint64) error
	SearchPosts(ctx context.Context, filter *PostSearchFilter) ([]*model.Post, int64, error)
	FindPublicLocated(ctx context.Context, query string) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tags []*model.PostTag) error {
	if len(tags) == 0 {
		return s.db.WithContext(ctx).Create(post).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			tag.PostID = post.ID
		}
		if err := tx.Create(tags).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Location").Preload("Tags").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tags []*model.PostTag, tagsChanged bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}
		if !tagsChanged {
			return nil
		}
		if err := tx.Delete(&model.PostTag{}, "post_id = ?", post.ID).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		for _, tag := range tags {
			tag.PostID = post.ID
		}
		return tx.Create(tags).Error
	})
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PostTag{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Bookmark{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// searchScope 构造搜索谓词。计数查询和分页查询共用同一个
// scope，保证 total 和结果页基于完全一致的过滤条件。
func searchScope(filter *PostSearchFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Model(&model.Post{}).Where("posts.is_public = ?", true)

		if filter.Query != "" {
			like := "%" + filter.Query + "%"
			db = db.Joins("JOIN users ON users.id = posts.author_id").
				Where("posts.title LIKE ? OR posts.content LIKE ? OR users.name LIKE ?", like, like, like)
		}

		if filter.Location != "" {
			db = db.Joins("JOIN locations ON locations.id = posts.location_id").
				Where("locations.name LIKE ?", "%"+filter.Location+"%")
		}

		if filter.AuthorID != 0 {
			db = db.Where("posts.author_id = ?", filter.AuthorID)
		}

		// 标签为 AND 语义：投稿必须至少包含全部给定标签
		if len(filter.Tags) > 0 {
			db = db.Where(
				"(SELECT COUNT(DISTINCT tags.name) FROM post_tags JOIN tags ON tags.id = post_tags.tag_id WHERE post_tags.post_id = posts.id AND tags.name IN ?) = ?",
				filter.Tags, len(filter.Tags),
			)
		}

		return db
	}
}

// SearchPosts 执行搜索。计数与取页无先后依赖，并发发出以降低延迟。
func (s *PostRepoImpl) SearchPosts(ctx context.Context, filter *PostSearchFilter) ([]*model.Post, int64, error) {
	var (
		posts []*model.Post
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Scopes(searchScope(filter)).
			Preload("Author").Preload("Location").Preload("Tags").
			Order("posts.created_at DESC").
			Order("posts.id ASC").
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&posts).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Scopes(searchScope(filter)).
			Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// FindPublicLocated 取出所有带坐标的公开投稿，供半径过滤使用。
func (s *PostRepoImpl) FindPublicLocated(ctx context.Context, query string) ([]*model.Post, error) {
	db := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Joins("JOIN locations ON locations.id = posts.location_id").
		Where("posts.is_public = ?", true).
		Where("locations.latitude IS NOT NULL AND locations.longitude IS NOT NULL")

	if query != "" {
		like := "%" + query + "%"
		db = db.Joins("JOIN users ON users.id = posts.author_id").
			Where("posts.title LIKE ? OR posts.content LIKE ? OR users.name LIKE ?", like, like, like)
	}

	var posts []*model.Post
	err := db.
		Preload("Author").Preload("Location").Preload("Tags").
		Order("posts.created_at DESC").
		Order("posts.id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id = ? AND is_public = ?", authorID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
