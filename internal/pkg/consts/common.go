package consts

const (
	// MimePrefixImage 图片类型前缀
	MimePrefixImage = "image/"

	// MaxUploadSize 上传文件大小限制 5MB
	MaxUploadSize = 5 * 1024 * 1024

	// AvatarPrefix 头像对象存储目录
	AvatarPrefix = "public/avatars/"
	// PostImagePrefix 投稿图片对象存储目录
	PostImagePrefix = "public/images/"

	// DefaultPageLimit 默认分页大小
	DefaultPageLimit = 10
	// MaxPageLimit 最大分页大小
	MaxPageLimit = 50
)
