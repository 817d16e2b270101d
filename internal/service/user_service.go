package service

import (
	"Nokoroa/internal/api/dto"
	"Nokoroa/internal/model"
	"Nokoroa/internal/pkg/consts"
	"Nokoroa/internal/pkg/redis"
	"Nokoroa/internal/pkg/security"
	"Nokoroa/internal/repository"
	"context"
	"time"
)

type UserService interface {
	Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserById(ctx context.Context, id uint64, currentUserID uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error
	UpdateAvatar(ctx context.Context, id uint64, avatarURL string) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo       repository.UserRepo
	postRepo       repository.PostRepo
	userFollowRepo repository.UserFollowRepo
}

func NewUserService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	userFollowRepo repository.UserFollowRepo,
) UserService {
	return &UserServiceImpl{
		userRepo:       userRepo,
		postRepo:       postRepo,
		userFollowRepo: userFollowRepo,
	}
}

func buildUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.AuthResultDTO, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, signupDTO.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExist
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     signupDTO.Name,
		Email:    signupDTO.Email,
		Password: &passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResultDTO{
		AccessToken: token,
		User:        buildUserDTO(user),
	}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == nil {
		return nil, ErrInvalidCredentials
	}

	if err = security.CheckPasswordHash(loginDTO.Password, *user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResultDTO{
		AccessToken: token,
		User:        buildUserDTO(user),
	}, nil
}

// Logout 将 Token 签名加入黑名单，有效期与 Token 一致。
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserById(ctx context.Context, id uint64, currentUserID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := buildUserDTO(user)

	if userDTO.PostsCount, err = s.postRepo.CountByAuthor(ctx, id); err != nil {
		return nil, err
	}
	if userDTO.FollowersCount, err = s.userFollowRepo.GetUserFollowerCount(ctx, id); err != nil {
		return nil, err
	}
	if userDTO.FollowingCount, err = s.userFollowRepo.GetUserFollowingCount(ctx, id); err != nil {
		return nil, err
	}

	if currentUserID != 0 && currentUserID != id {
		follow, err := s.userFollowRepo.GetUserFollow(ctx, currentUserID, id)
		if err != nil {
			return nil, err
		}
		userDTO.IsFollowing = follow != nil
	}

	return userDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if updateDTO.Email != nil && *updateDTO.Email != user.Email {
		existing, err := s.userRepo.GetUserByEmail(ctx, *updateDTO.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailExist
		}
		user.Email = *updateDTO.Email
	}
	if updateDTO.Name != nil {
		user.Name = *updateDTO.Name
	}
	if updateDTO.Bio != nil {
		user.Bio = updateDTO.Bio
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return buildUserDTO(user), nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error {
	if changeDTO.NewPassword != changeDTO.ConfirmPassword {
		return ErrPasswordMismatch
	}

	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Password == nil {
		return ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(changeDTO.CurrentPassword, *user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	user.Password = &passwordHash

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Avatar = &avatarURL
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return buildUserDTO(user), nil
}
