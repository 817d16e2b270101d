package dto

// FollowStatusDTO 关注状态
type FollowStatusDTO struct {
	IsFollowing bool `json:"isFollowing"`
}

// FollowCountDTO 关注数量
type FollowCountDTO struct {
	Count int64 `json:"count"`
}

// FollowUserPageDTO 关注／粉丝用户分页结果
type FollowUserPageDTO struct {
	Users   []*UserDTO `json:"users"`
	Total   int64      `json:"total"`
	HasMore bool       `json:"hasMore"`
}
