package dto

// FavoriteDTO 收藏记录及其投稿投影
type FavoriteDTO struct {
	ID        uint64   `json:"id"`
	CreatedAt string   `json:"createdAt"`
	Post      *PostDTO `json:"post"`
}

// FavoritePageDTO 收藏分页结果
type FavoritePageDTO struct {
	Favorites []*FavoriteDTO `json:"favorites"`
	Total     int64          `json:"total"`
	HasMore   bool           `json:"hasMore"`
}

// FavoriteStatusDTO 收藏状态
type FavoriteStatusDTO struct {
	IsFavorited bool `json:"isFavorited"`
}

// FavoriteStatsDTO 投稿收藏数
type FavoriteStatsDTO struct {
	FavoritesCount int64 `json:"favoritesCount"`
}
