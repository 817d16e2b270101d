package service

import (
	"Nokoroa/internal/api/dto"
	"Nokoroa/internal/model"
	"Nokoroa/internal/pkg/consts"
	"Nokoroa/internal/pkg/geo"
	"Nokoroa/internal/pkg/redis"
	"Nokoroa/internal/pkg/util"
	"Nokoroa/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const (
	// TagStatsCacheTTL 标签聚合缓存过期时间
	TagStatsCacheTTL = 15 * time.Minute
	// LocationListCacheTTL 地点列表缓存过期时间
	LocationListCacheTTL = 15 * time.Minute
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, userID uint64, postID uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, listDTO *dto.ListPostsDTO) (*dto.PostPageDTO, error)
	SearchPosts(ctx context.Context, searchDTO *dto.SearchPostsDTO) (*dto.PostPageDTO, error)
	SearchPostsByLocation(ctx context.Context, searchDTO *dto.SearchByLocationDTO) (*dto.PostPageDTO, error)
	UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.UpdatePostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
	GetTagStats(ctx context.Context) ([]*dto.TagStatDTO, error)
	RefreshTagStats(ctx context.Context) ([]*dto.TagStatDTO, error)
	GetLocations(ctx context.Context) ([]*dto.LocationDTO, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	tagRepo      repository.TagRepo
	locationRepo repository.LocationRepo
	bookmarkRepo repository.BookmarkRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	tagRepo repository.TagRepo,
	locationRepo repository.LocationRepo,
	bookmarkRepo repository.BookmarkRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		locationRepo: locationRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func pageLimit(limit *int) int {
	if limit == nil {
		return consts.DefaultPageLimit
	}
	return *limit
}

func pageOffset(offset *int) int {
	if offset == nil {
		return 0
	}
	return *offset
}

// buildPostDTO 投稿扁平投影。搜索、收藏列表和单条查询共用。
func buildPostDTO(post *model.Post, favoritesCount int64) *dto.PostDTO {
	postDTO := &dto.PostDTO{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		ImageURL:       post.ImageURL,
		IsPublic:       post.IsPublic,
		CreatedAt:      post.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      post.UpdatedAt.Format(time.RFC3339),
		AuthorID:       post.AuthorID,
		Tags:           make([]string, 0, len(post.Tags)),
		FavoritesCount: favoritesCount,
	}

	_ = copier.Copy(&postDTO.Author, &post.Author)

	for _, tag := range post.Tags {
		postDTO.Tags = append(postDTO.Tags, tag.Name)
	}

	if post.Location != nil {
		postDTO.Location = &post.Location.Name
		postDTO.Latitude = post.Location.Latitude
		postDTO.Longitude = post.Location.Longitude
		postDTO.Prefecture = post.Location.Prefecture
	}

	return postDTO
}

// batchToPostDTO 批量投影，收藏数一次查询。
func (s *postServiceImpl) batchToPostDTO(ctx context.Context, posts []*model.Post) ([]*dto.PostDTO, error) {
	ids := make([]uint64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	counts, err := s.bookmarkRepo.CountByPostIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, buildPostDTO(post, counts[post.ID]))
	}
	return items, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.CreatePostDTO) (*dto.PostDTO, error) {
	// 经纬度必须成对出现
	if (postDTO.Latitude == nil) != (postDTO.Longitude == nil) {
		return nil, ErrParamInvalid
	}

	post := &model.Post{
		AuthorID: userID,
		Title:    postDTO.Title,
		Content:  postDTO.Content,
		ImageURL: postDTO.ImageURL,
		IsPublic: true,
	}
	if postDTO.IsPublic != nil {
		post.IsPublic = *postDTO.IsPublic
	}

	if postDTO.Location != nil && strings.TrimSpace(*postDTO.Location) != "" {
		location := &model.Location{
			Name:       strings.TrimSpace(*postDTO.Location),
			Country:    "日本",
			Prefecture: postDTO.Prefecture,
			Latitude:   postDTO.Latitude,
			Longitude:  postDTO.Longitude,
		}
		if postDTO.Country != nil && *postDTO.Country != "" {
			location.Country = *postDTO.Country
		}
		location, err := s.locationRepo.GetOrCreateLocation(ctx, location)
		if err != nil {
			return nil, err
		}
		post.LocationID = &location.ID
	}

	postTags, err := s.resolveTags(ctx, postDTO.Tags)
	if err != nil {
		return nil, err
	}

	if err = s.postRepo.CreatePost(ctx, post, postTags); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, userID, post.ID)
}

// resolveTags 规范化标签名并解析为关联行，不存在的标签自动创建。
func (s *postServiceImpl) resolveTags(ctx context.Context, rawTags []string) ([]*model.PostTag, error) {
	names := util.SplitTagParam(rawTags)
	if len(names) == 0 {
		return nil, nil
	}

	tags, err := s.tagRepo.GetOrCreateTags(ctx, names)
	if err != nil {
		return nil, err
	}

	postTags := make([]*model.PostTag, 0, len(tags))
	for _, tag := range tags {
		postTags = append(postTags, &model.PostTag{TagID: tag.ID})
	}
	return postTags, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, userID uint64, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	// 非公开投稿只有作者本人可见
	if post == nil || (!post.IsPublic && post.AuthorID != userID) {
		return nil, ErrPostNotFound
	}

	count, err := s.bookmarkRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return buildPostDTO(post, count), nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context, listDTO *dto.ListPostsDTO) (*dto.PostPageDTO, error) {
	return s.SearchPosts(ctx, &dto.SearchPostsDTO{
		Limit:  listDTO.Limit,
		Offset: listDTO.Offset,
	})
}

// SearchPosts 文本搜索入口。所有过滤条件以 AND 组合。
func (s *postServiceImpl) SearchPosts(ctx context.Context, searchDTO *dto.SearchPostsDTO) (*dto.PostPageDTO, error) {
	filter := &repository.PostSearchFilter{
		Query:    strings.TrimSpace(searchDTO.Query),
		Tags:     util.SplitTagParam(searchDTO.Tags),
		Location: strings.TrimSpace(searchDTO.Location),
		AuthorID: searchDTO.AuthorID,
		Limit:    pageLimit(searchDTO.Limit),
		Offset:   pageOffset(searchDTO.Offset),
	}

	posts, total, err := s.postRepo.SearchPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.batchToPostDTO(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		Posts:   items,
		Total:   total,
		HasMore: int64(filter.Offset+filter.Limit) < total,
	}, nil
}

// SearchPostsByLocation 半径搜索入口。中心点与半径三者齐全时启用
// 距离过滤，否则退化为普通公开投稿搜索。
func (s *postServiceImpl) SearchPostsByLocation(ctx context.Context, searchDTO *dto.SearchByLocationDTO) (*dto.PostPageDTO, error) {
	limit := pageLimit(searchDTO.Limit)
	offset := pageOffset(searchDTO.Offset)

	if searchDTO.CenterLat == nil || searchDTO.CenterLng == nil || searchDTO.Radius == nil {
		return s.SearchPosts(ctx, &dto.SearchPostsDTO{
			Query:  searchDTO.Query,
			Limit:  searchDTO.Limit,
			Offset: searchDTO.Offset,
		})
	}

	candidates, err := s.postRepo.FindPublicLocated(ctx, strings.TrimSpace(searchDTO.Query))
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Post, 0, len(candidates))
	for _, post := range candidates {
		distance := geo.HaversineDistance(
			*searchDTO.CenterLat, *searchDTO.CenterLng,
			*post.Location.Latitude, *post.Location.Longitude,
		)
		if distance <= *searchDTO.Radius {
			matched = append(matched, post)
		}
	}

	total := int64(len(matched))
	start := offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	items, err := s.batchToPostDTO(ctx, matched[start:end])
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		Posts:   items,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	}, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrPostForbidden
	}

	if (postDTO.Latitude == nil) != (postDTO.Longitude == nil) {
		return nil, ErrParamInvalid
	}

	if postDTO.Title != nil {
		post.Title = *postDTO.Title
	}
	if postDTO.Content != nil {
		post.Content = *postDTO.Content
	}
	if postDTO.ImageURL != nil {
		post.ImageURL = *postDTO.ImageURL
	}
	if postDTO.IsPublic != nil {
		post.IsPublic = *postDTO.IsPublic
	}

	if postDTO.Location != nil {
		if strings.TrimSpace(*postDTO.Location) == "" {
			post.LocationID = nil
		} else {
			location := &model.Location{
				Name:       strings.TrimSpace(*postDTO.Location),
				Country:    "日本",
				Prefecture: postDTO.Prefecture,
				Latitude:   postDTO.Latitude,
				Longitude:  postDTO.Longitude,
			}
			if postDTO.Country != nil && *postDTO.Country != "" {
				location.Country = *postDTO.Country
			}
			location, err = s.locationRepo.GetOrCreateLocation(ctx, location)
			if err != nil {
				return nil, err
			}
			post.LocationID = &location.ID
		}
	}

	var postTags []*model.PostTag
	tagsChanged := postDTO.Tags != nil
	if tagsChanged {
		postTags, err = s.resolveTags(ctx, postDTO.Tags)
		if err != nil {
			return nil, err
		}
	}

	// Save 会写回 Preload 出来的关联，清空避免误写
	post.Author = model.User{}
	post.Location = nil
	post.Tags = nil

	if err = s.postRepo.UpdatePost(ctx, post, postTags, tagsChanged); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, userID, postID)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrPostForbidden
	}
	return s.postRepo.DeletePost(ctx, postID)
}

// GetTagStats 优先读缓存，未命中回源并回填。
func (s *postServiceImpl) GetTagStats(ctx context.Context) ([]*dto.TagStatDTO, error) {
	cached, err := redis.GetValue(ctx, consts.TagStatsKey)
	if err == nil && cached != "" {
		var stats []*dto.TagStatDTO
		if err = json.Unmarshal([]byte(cached), &stats); err == nil {
			return stats, nil
		}
		log.WarnContext(ctx, "broken tag stats cache, refreshing", "err", err)
	}

	return s.RefreshTagStats(ctx)
}

// RefreshTagStats 重新聚合标签使用次数并写入缓存。
func (s *postServiceImpl) RefreshTagStats(ctx context.Context) ([]*dto.TagStatDTO, error) {
	rows, err := s.tagRepo.ListTagStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]*dto.TagStatDTO, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &dto.TagStatDTO{
			Name:  row.Name,
			Slug:  row.Slug,
			Count: row.Count,
		})
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err = redis.SetWithExpiration(ctx, consts.TagStatsKey, string(payload), TagStatsCacheTTL); err != nil {
			log.WarnContext(ctx, "failed to cache tag stats", "err", err)
		}
	}

	return stats, nil
}

// GetLocations 地点列表走与标签聚合相同的缓存策略。
func (s *postServiceImpl) GetLocations(ctx context.Context) ([]*dto.LocationDTO, error) {
	cached, err := redis.GetValue(ctx, consts.LocationListKey)
	if err == nil && cached != "" {
		var items []*dto.LocationDTO
		if err = json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		log.WarnContext(ctx, "broken location list cache, refreshing", "err", err)
	}

	locations, err := s.locationRepo.ListUsedByPublicPosts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.LocationDTO, 0, len(locations))
	for _, location := range locations {
		item := &dto.LocationDTO{}
		_ = copier.Copy(item, location)
		items = append(items, item)
	}

	if payload, err := json.Marshal(items); err == nil {
		if err = redis.SetWithExpiration(ctx, consts.LocationListKey, string(payload), LocationListCacheTTL); err != nil {
			log.WarnContext(ctx, "failed to cache location list", "err", err)
		}
	}

	return items, nil
}
