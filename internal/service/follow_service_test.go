package service

import (
	"Nokoroa/internal/model"
	"context"
	"errors"
	"testing"
	"time"
)

func newTestFollowService(userCount int) (FollowService, *fakeUserFollowRepo) {
	userRepo := &fakeUserRepo{}
	for i := 0; i < userCount; i++ {
		_ = userRepo.CreateUser(context.Background(), &model.User{
			Name:  "user",
			Email: "user@example.com",
		})
	}
	followRepo := &fakeUserFollowRepo{}
	return NewFollowService(followRepo, userRepo), followRepo
}

func TestFollow(t *testing.T) {
	svc, _ := newTestFollowService(2)

	if err := svc.Follow(context.Background(), 1, 1); !errors.Is(err, ErrFollowSelf) {
		t.Fatalf("self follow: got %v, want ErrFollowSelf", err)
	}
	if err := svc.Follow(context.Background(), 1, 42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing target: got %v, want ErrUserNotFound", err)
	}

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if err := svc.Follow(context.Background(), 1, 2); !errors.Is(err, ErrFollowExist) {
		t.Fatalf("duplicate follow: got %v, want ErrFollowExist", err)
	}

	status, err := svc.IsFollowing(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if !status.IsFollowing {
		t.Fatal("isFollowing should be true after follow")
	}
	// 关注不是双向的
	reverse, err := svc.IsFollowing(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("IsFollowing reverse: %v", err)
	}
	if reverse.IsFollowing {
		t.Fatal("follow must not be symmetric")
	}
}

func TestUnfollow(t *testing.T) {
	svc, _ := newTestFollowService(2)

	if err := svc.Unfollow(context.Background(), 1, 2); !errors.Is(err, ErrFollowNotFound) {
		t.Fatalf("not following: got %v, want ErrFollowNotFound", err)
	}

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if err := svc.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}

	status, err := svc.IsFollowing(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if status.IsFollowing {
		t.Fatal("isFollowing should be false after unfollow")
	}
}

func TestFollowListsAndCounts(t *testing.T) {
	svc, _ := newTestFollowService(4)

	// 2、3、4 关注 1，1 关注 2
	for follower := uint64(2); follower <= 4; follower++ {
		if err := svc.Follow(context.Background(), follower, 1); err != nil {
			t.Fatalf("Follow %d->1: %v", follower, err)
		}
	}
	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Follow 1->2: %v", err)
	}

	followers, err := svc.GetFollowers(context.Background(), 1, 10, 0)
	if err != nil {
		t.Fatalf("GetFollowers: %v", err)
	}
	if len(followers.Users) != 3 || followers.Total != 3 || followers.HasMore {
		t.Fatalf("followers: len=%d total=%d hasMore=%v, want 3/3/false", len(followers.Users), followers.Total, followers.HasMore)
	}

	following, err := svc.GetFollowing(context.Background(), 1, 10, 0)
	if err != nil {
		t.Fatalf("GetFollowing: %v", err)
	}
	if len(following.Users) != 1 || following.Users[0].ID != 2 {
		t.Fatalf("following: %+v", following.Users)
	}

	followerCount, err := svc.GetFollowerCount(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetFollowerCount: %v", err)
	}
	if followerCount.Count != 3 {
		t.Fatalf("follower count: got %d, want 3", followerCount.Count)
	}
	followingCount, err := svc.GetFollowingCount(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetFollowingCount: %v", err)
	}
	if followingCount.Count != 1 {
		t.Fatalf("following count: got %d, want 1", followingCount.Count)
	}

	// 分页
	firstPage, err := svc.GetFollowers(context.Background(), 1, 2, 0)
	if err != nil {
		t.Fatalf("GetFollowers page 1: %v", err)
	}
	if len(firstPage.Users) != 2 || !firstPage.HasMore {
		t.Fatalf("followers page 1: len=%d hasMore=%v, want 2/true", len(firstPage.Users), firstPage.HasMore)
	}
}

func TestFollowerPagingStableOnEqualTimestamps(t *testing.T) {
	svc, followRepo := newTestFollowService(4)

	// 同一时刻产生的关注关系，分页顺序必须稳定
	at := time.Now()
	for _, follower := range []uint64{4, 2, 3} {
		followRepo.follows = append(followRepo.follows, &model.UserFollow{
			FollowerID:  follower,
			FollowingID: 1,
			CreatedAt:   at,
		})
	}

	first, err := svc.GetFollowers(context.Background(), 1, 2, 0)
	if err != nil {
		t.Fatalf("GetFollowers page 1: %v", err)
	}
	second, err := svc.GetFollowers(context.Background(), 1, 2, 2)
	if err != nil {
		t.Fatalf("GetFollowers page 2: %v", err)
	}

	got := make([]uint64, 0, 3)
	for _, user := range append(first.Users, second.Users...) {
		got = append(got, user.ID)
	}
	want := []uint64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("paged followers: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paged followers: got %v, want %v", got, want)
		}
	}
}
