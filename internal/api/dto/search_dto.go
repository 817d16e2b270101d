package dto

// SearchPostsDTO 投稿搜索查询参数。
// limit/offset 越界直接校验失败，不做静默截断。
type SearchPostsDTO struct {
	Query    string   `form:"q"`
	Tags     []string `form:"tags"`
	Location string   `form:"location"`
	AuthorID uint64   `form:"authorId"`
	Limit    *int     `form:"limit" validate:"omitempty,min=1,max=50"`
	Offset   *int     `form:"offset" validate:"omitempty,min=0"`
}

// SearchByLocationDTO 位置（半径）搜索查询参数。
// centerLat/centerLng/radius 三者齐全时才启用距离过滤。
type SearchByLocationDTO struct {
	CenterLat *float64 `form:"centerLat" validate:"omitempty,min=-90,max=90"`
	CenterLng *float64 `form:"centerLng" validate:"omitempty,min=-180,max=180"`
	Radius    *float64 `form:"radius" validate:"omitempty,gt=0"`
	Query     string   `form:"q"`
	Limit     *int     `form:"limit" validate:"omitempty,min=1,max=50"`
	Offset    *int     `form:"offset" validate:"omitempty,min=0"`
}

// ListPostsDTO 公开投稿列表查询参数
type ListPostsDTO struct {
	Limit  *int `form:"limit" validate:"omitempty,min=1,max=50"`
	Offset *int `form:"offset" validate:"omitempty,min=0"`
}
