package service

import (
	"Nokoroa/internal/api/dto"
	"Nokoroa/internal/model"
	"Nokoroa/internal/repository"
	"context"
	"time"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) (*dto.FollowUserPageDTO, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) (*dto.FollowUserPageDTO, error)
	GetFollowerCount(ctx context.Context, userID uint64) (*dto.FollowCountDTO, error)
	GetFollowingCount(ctx context.Context, userID uint64) (*dto.FollowCountDTO, error)
}

type followServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) FollowService {
	return &followServiceImpl{
		userFollowRepo: userFollowRepo,
		userRepo:       userRepo,
	}
}

func (s *followServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserById(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	existing, err := s.userFollowRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrFollowExist
	}

	return s.userFollowRepo.CreateUserFollow(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
}

func (s *followServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	existing, err := s.userFollowRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFollowNotFound
	}
	return s.userFollowRepo.DeleteUserFollow(ctx, existing)
}

func (s *followServiceImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error) {
	follow, err := s.userFollowRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowStatusDTO{IsFollowing: follow != nil}, nil
}

// buildFollowPage 将关注关系批量换成用户信息，保持原有顺序。
func (s *followServiceImpl) buildFollowPage(ctx context.Context, follows []*model.UserFollow, total int64, limit, offset int, pickFollower bool) (*dto.FollowUserPageDTO, error) {
	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		if pickFollower {
			ids = append(ids, follow.FollowerID)
		} else {
			ids = append(ids, follow.FollowingID)
		}
	}

	users, err := s.userRepo.GetUsersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	items := make([]*dto.UserDTO, 0, len(ids))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			items = append(items, buildUserDTO(user))
		}
	}

	return &dto.FollowUserPageDTO{
		Users:   items,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	}, nil
}

func (s *followServiceImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) (*dto.FollowUserPageDTO, error) {
	follows, err := s.userFollowRepo.GetUserFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.userFollowRepo.GetUserFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildFollowPage(ctx, follows, total, limit, offset, true)
}

func (s *followServiceImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) (*dto.FollowUserPageDTO, error) {
	follows, err := s.userFollowRepo.GetUserFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.userFollowRepo.GetUserFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildFollowPage(ctx, follows, total, limit, offset, false)
}

func (s *followServiceImpl) GetFollowerCount(ctx context.Context, userID uint64) (*dto.FollowCountDTO, error) {
	count, err := s.userFollowRepo.GetUserFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowCountDTO{Count: count}, nil
}

func (s *followServiceImpl) GetFollowingCount(ctx context.Context, userID uint64) (*dto.FollowCountDTO, error) {
	count, err := s.userFollowRepo.GetUserFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowCountDTO{Count: count}, nil
}
