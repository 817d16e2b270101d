package consts

const (
	// TokenBlacklistKey 注销 Token 黑名单前缀（值为 Token 签名）
	TokenBlacklistKey = "nokoroa:token:blacklist:"

	// TagStatsKey 标签使用次数聚合缓存
	TagStatsKey = "nokoroa:tags:stats"
	// LocationListKey 公开投稿地点列表缓存
	LocationListKey = "nokoroa:locations:list"
)
