package service

import (
	"Nokoroa/internal/model"
	"Nokoroa/internal/repository"
	"context"
	"sort"
	"strings"
)

// 内存版仓储实现，保持与 SQL 版一致的过滤与排序语义。

type fakePostRepo struct {
	posts  []*model.Post
	nextID uint64
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post, tags []*model.PostTag) error {
	f.nextID++
	post.ID = f.nextID
	for _, tag := range tags {
		post.Tags = append(post.Tags, model.Tag{ID: tag.TagID})
	}
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	for _, post := range f.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post, tags []*model.PostTag, tagsChanged bool) error {
	for i, existing := range f.posts {
		if existing.ID == post.ID {
			if tagsChanged {
				post.Tags = nil
				for _, tag := range tags {
					post.Tags = append(post.Tags, model.Tag{ID: tag.TagID})
				}
			} else {
				post.Tags = existing.Tags
			}
			f.posts[i] = post
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	for i, post := range f.posts {
		if post.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) matches(post *model.Post, filter *repository.PostSearchFilter) bool {
	if !post.IsPublic {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(post.Title), q) &&
			!strings.Contains(strings.ToLower(post.Content), q) &&
			!strings.Contains(strings.ToLower(post.Author.Name), q) {
			return false
		}
	}
	if filter.Location != "" {
		if post.Location == nil ||
			!strings.Contains(strings.ToLower(post.Location.Name), strings.ToLower(filter.Location)) {
			return false
		}
	}
	if filter.AuthorID != 0 && post.AuthorID != filter.AuthorID {
		return false
	}
	// 与 SQL 谓词一致：投稿命中的不同标签数必须等于过滤标签数
	if len(filter.Tags) > 0 {
		distinct := make(map[string]bool)
		for _, tag := range post.Tags {
			for _, want := range filter.Tags {
				if tag.Name == want {
					distinct[tag.Name] = true
				}
			}
		}
		if len(distinct) != len(filter.Tags) {
			return false
		}
	}
	return true
}

func (f *fakePostRepo) SearchPosts(_ context.Context, filter *repository.PostSearchFilter) ([]*model.Post, int64, error) {
	matched := make([]*model.Post, 0)
	for _, post := range f.posts {
		if f.matches(post, filter) {
			matched = append(matched, post)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	start := filter.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakePostRepo) FindPublicLocated(_ context.Context, query string) ([]*model.Post, error) {
	located := make([]*model.Post, 0)
	for _, post := range f.posts {
		if !post.IsPublic || post.Location == nil ||
			post.Location.Latitude == nil || post.Location.Longitude == nil {
			continue
		}
		if query != "" {
			q := strings.ToLower(query)
			if !strings.Contains(strings.ToLower(post.Title), q) &&
				!strings.Contains(strings.ToLower(post.Content), q) {
				continue
			}
		}
		located = append(located, post)
	}
	return located, nil
}

func (f *fakePostRepo) CountByAuthor(_ context.Context, authorID uint64) (int64, error) {
	var count int64
	for _, post := range f.posts {
		if post.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakeTagRepo struct {
	tags   map[string]*model.Tag
	stats  []*repository.TagStat
	nextID uint64
}

func (f *fakeTagRepo) GetOrCreateTags(_ context.Context, tagNames []string) ([]*model.Tag, error) {
	if f.tags == nil {
		f.tags = make(map[string]*model.Tag)
	}
	tags := make([]*model.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, ok := f.tags[name]
		if !ok {
			f.nextID++
			tag = &model.Tag{ID: f.nextID, Name: name}
			f.tags[name] = tag
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (f *fakeTagRepo) ListTagStats(_ context.Context) ([]*repository.TagStat, error) {
	return f.stats, nil
}

type fakeLocationRepo struct {
	locations map[string]*model.Location
	nextID    uint64
}

func (f *fakeLocationRepo) GetOrCreateLocation(_ context.Context, location *model.Location) (*model.Location, error) {
	if f.locations == nil {
		f.locations = make(map[string]*model.Location)
	}
	if existing, ok := f.locations[location.Name]; ok {
		return existing, nil
	}
	f.nextID++
	location.ID = f.nextID
	f.locations[location.Name] = location
	return location, nil
}

func (f *fakeLocationRepo) ListUsedByPublicPosts(_ context.Context) ([]*model.Location, error) {
	locations := make([]*model.Location, 0, len(f.locations))
	for _, location := range f.locations {
		locations = append(locations, location)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].ID < locations[j].ID })
	return locations, nil
}

type fakeBookmarkRepo struct {
	bookmarks []*model.Bookmark
	nextID    uint64
}

func (f *fakeBookmarkRepo) CreateBookmark(_ context.Context, bookmark *model.Bookmark) error {
	f.nextID++
	bookmark.ID = f.nextID
	f.bookmarks = append(f.bookmarks, bookmark)
	return nil
}

func (f *fakeBookmarkRepo) DeleteBookmark(_ context.Context, id uint64) error {
	for i, bookmark := range f.bookmarks {
		if bookmark.ID == id {
			f.bookmarks = append(f.bookmarks[:i], f.bookmarks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBookmarkRepo) GetBookmark(_ context.Context, userID, postID uint64) (*model.Bookmark, error) {
	for _, bookmark := range f.bookmarks {
		if bookmark.UserID == userID && bookmark.PostID == postID {
			return bookmark, nil
		}
	}
	return nil, nil
}

func (f *fakeBookmarkRepo) ListByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.Bookmark, int64, error) {
	matched := make([]*model.Bookmark, 0)
	for _, bookmark := range f.bookmarks {
		if bookmark.UserID == userID {
			matched = append(matched, bookmark)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeBookmarkRepo) CountByPost(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for _, bookmark := range f.bookmarks {
		if bookmark.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookmarkRepo) CountByPostIds(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	for _, postID := range postIDs {
		count, _ := f.CountByPost(ctx, postID)
		if count > 0 {
			counts[postID] = count
		}
	}
	return counts, nil
}

type fakeUserRepo struct {
	users  []*model.User
	nextID uint64
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUsersByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		for _, user := range f.users {
			if user.ID == id {
				users = append(users, user)
				break
			}
		}
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	for i, existing := range f.users {
		if existing.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return nil
}

type fakeUserFollowRepo struct {
	follows []*model.UserFollow
}

func (f *fakeUserFollowRepo) GetUserFollowers(_ context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	matched := make([]*model.UserFollow, 0)
	for _, follow := range f.follows {
		if follow.FollowingID == userID {
			matched = append(matched, follow)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].FollowerID < matched[j].FollowerID
	})
	return pageFollows(matched, limit, offset), nil
}

func (f *fakeUserFollowRepo) GetUserFollowing(_ context.Context, userID uint64, limit, offset int) ([]*model.UserFollow, error) {
	matched := make([]*model.UserFollow, 0)
	for _, follow := range f.follows {
		if follow.FollowerID == userID {
			matched = append(matched, follow)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].FollowingID < matched[j].FollowingID
	})
	return pageFollows(matched, limit, offset), nil
}

func pageFollows(follows []*model.UserFollow, limit, offset int) []*model.UserFollow {
	if offset > len(follows) {
		offset = len(follows)
	}
	end := offset + limit
	if end > len(follows) {
		end = len(follows)
	}
	return follows[offset:end]
}

func (f *fakeUserFollowRepo) GetUserFollowerCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, follow := range f.follows {
		if follow.FollowingID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserFollowRepo) GetUserFollowingCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, follow := range f.follows {
		if follow.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserFollowRepo) GetUserFollow(_ context.Context, userID uint64, followingID uint64) (*model.UserFollow, error) {
	for _, follow := range f.follows {
		if follow.FollowerID == userID && follow.FollowingID == followingID {
			return follow, nil
		}
	}
	return nil, nil
}

func (f *fakeUserFollowRepo) CreateUserFollow(_ context.Context, userFollow *model.UserFollow) error {
	f.follows = append(f.follows, userFollow)
	return nil
}

func (f *fakeUserFollowRepo) DeleteUserFollow(_ context.Context, userFollow *model.UserFollow) error {
	for i, follow := range f.follows {
		if follow.FollowerID == userFollow.FollowerID && follow.FollowingID == userFollow.FollowingID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			return nil
		}
	}
	return nil
}
