package dto

// LoginDTO 登录请求
type LoginDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=6"`
}

// SignupDTO 注册请求
type SignupDTO struct {
	Name     string `json:"name" binding:"required" validate:"min=2,max=50"`
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

// UpdateUserDTO 个人信息更新请求，空字段不修改
type UpdateUserDTO struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
	Bio   *string `json:"bio" validate:"omitempty,max=500"`
}

// ChangePasswordDTO 修改密码请求
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required" validate:"min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UserDTO 用户信息
type UserDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar"`
	CreatedAt string  `json:"createdAt"`

	PostsCount     int64 `json:"postsCount"`
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
	IsFollowing    bool  `json:"isFollowing"`
}

// AuthResultDTO 登录／注册结果
type AuthResultDTO struct {
	AccessToken string   `json:"access_token"`
	User        *UserDTO `json:"user"`
}
