package dto

// AuthorDTO 投稿作者信息（只读投影）
type AuthorDTO struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar"`
}

// PostDTO 投稿扁平投影。搜索、收藏列表和单条查询共用同一形状。
type PostDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	IsPublic  bool   `json:"isPublic"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	AuthorID uint64    `json:"authorId"`
	Author   AuthorDTO `json:"author"`

	Tags []string `json:"tags"`

	Location   *string  `json:"location"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Prefecture *string  `json:"prefecture"`

	FavoritesCount int64 `json:"favoritesCount"`
}

// PostPageDTO 分页结果
type PostPageDTO struct {
	Posts   []*PostDTO `json:"posts"`
	Total   int64      `json:"total"`
	HasMore bool       `json:"hasMore"`
}

// CreatePostDTO 投稿创建请求
type CreatePostDTO struct {
	Title      string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content    string   `json:"content" binding:"required" validate:"min=1"`
	ImageURL   string   `json:"imageUrl" binding:"required" validate:"min=1,max=512"`
	Location   *string  `json:"location" validate:"omitempty,max=255"`
	Country    *string  `json:"country" validate:"omitempty,max=100"`
	Prefecture *string  `json:"prefecture" validate:"omitempty,max=100"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	IsPublic   *bool    `json:"isPublic"`
}

// UpdatePostDTO 投稿更新请求，空字段不修改
type UpdatePostDTO struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string  `json:"content" validate:"omitempty,min=1"`
	ImageURL   *string  `json:"imageUrl" validate:"omitempty,min=1,max=512"`
	Location   *string  `json:"location" validate:"omitempty,max=255"`
	Country    *string  `json:"country" validate:"omitempty,max=100"`
	Prefecture *string  `json:"prefecture" validate:"omitempty,max=100"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	IsPublic   *bool    `json:"isPublic"`
}

// TagStatDTO 标签及使用次数
type TagStatDTO struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int64  `json:"count"`
}

// LocationDTO 公开投稿使用中的地点
type LocationDTO struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	Country    string   `json:"country"`
	Prefecture *string  `json:"prefecture"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}
