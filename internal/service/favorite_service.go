package service

import (
	"Nokoroa/internal/api/dto"
	"Nokoroa/internal/model"
	"Nokoroa/internal/repository"
	"context"
	"time"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, postID uint64) (*dto.FavoriteDTO, error)
	RemoveFavorite(ctx context.Context, userID, postID uint64) error
	GetUserFavorites(ctx context.Context, userID uint64, limit, offset int) (*dto.FavoritePageDTO, error)
	CheckFavoriteStatus(ctx context.Context, userID, postID uint64) (*dto.FavoriteStatusDTO, error)
	GetFavoriteStats(ctx context.Context, postID uint64) (*dto.FavoriteStatsDTO, error)
}

type favoriteServiceImpl struct {
	bookmarkRepo repository.BookmarkRepo
	postRepo     repository.PostRepo
}

func NewFavoriteService(bookmarkRepo repository.BookmarkRepo, postRepo repository.PostRepo) FavoriteService {
	return &favoriteServiceImpl{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
	}
}

func (s *favoriteServiceImpl) AddFavorite(ctx context.Context, userID, postID uint64) (*dto.FavoriteDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsPublic {
		return nil, ErrPostNotFound
	}

	existing, err := s.bookmarkRepo.GetBookmark(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFavoriteExist
	}

	bookmark := &model.Bookmark{
		UserID: userID,
		PostID: postID,
	}
	if err = s.bookmarkRepo.CreateBookmark(ctx, bookmark); err != nil {
		return nil, err
	}

	count, err := s.bookmarkRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &dto.FavoriteDTO{
		ID:        bookmark.ID,
		CreatedAt: bookmark.CreatedAt.Format(time.RFC3339),
		Post:      buildPostDTO(post, count),
	}, nil
}

func (s *favoriteServiceImpl) RemoveFavorite(ctx context.Context, userID, postID uint64) error {
	bookmark, err := s.bookmarkRepo.GetBookmark(ctx, userID, postID)
	if err != nil {
		return err
	}
	if bookmark == nil {
		return ErrFavoriteNotFound
	}
	return s.bookmarkRepo.DeleteBookmark(ctx, bookmark.ID)
}

func (s *favoriteServiceImpl) GetUserFavorites(ctx context.Context, userID uint64, limit, offset int) (*dto.FavoritePageDTO, error) {
	bookmarks, total, err := s.bookmarkRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	postIDs := make([]uint64, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		postIDs = append(postIDs, bookmark.PostID)
	}
	counts, err := s.bookmarkRepo.CountByPostIds(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	favorites := make([]*dto.FavoriteDTO, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		favorites = append(favorites, &dto.FavoriteDTO{
			ID:        bookmark.ID,
			CreatedAt: bookmark.CreatedAt.Format(time.RFC3339),
			Post:      buildPostDTO(&bookmark.Post, counts[bookmark.PostID]),
		})
	}

	return &dto.FavoritePageDTO{
		Favorites: favorites,
		Total:     total,
		HasMore:   int64(offset+limit) < total,
	}, nil
}

func (s *favoriteServiceImpl) CheckFavoriteStatus(ctx context.Context, userID, postID uint64) (*dto.FavoriteStatusDTO, error) {
	bookmark, err := s.bookmarkRepo.GetBookmark(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatusDTO{IsFavorited: bookmark != nil}, nil
}

func (s *favoriteServiceImpl) GetFavoriteStats(ctx context.Context, postID uint64) (*dto.FavoriteStatsDTO, error) {
	count, err := s.bookmarkRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatsDTO{FavoritesCount: count}, nil
}
