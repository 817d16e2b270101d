package service

import (
	"Nokoroa/internal/api/dto"
	"Nokoroa/internal/model"
	"context"
	"errors"
	"testing"
)

func newTestUserService() (UserService, *fakeUserRepo, *fakeUserFollowRepo) {
	userRepo := &fakeUserRepo{}
	followRepo := &fakeUserFollowRepo{}
	svc := NewUserService(userRepo, &fakePostRepo{}, followRepo)
	return svc, userRepo, followRepo
}

func TestSignupAndLogin(t *testing.T) {
	svc, _, _ := newTestUserService()

	result, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Name:     "taro",
		Email:    "taro@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("signup should return a token")
	}
	if result.User == nil || result.User.Email != "taro@example.com" {
		t.Fatalf("signup user: %+v", result.User)
	}

	// 重复邮箱
	_, err = svc.Signup(context.Background(), &dto.SignupDTO{
		Name:     "jiro",
		Email:    "taro@example.com",
		Password: "secret456",
	})
	if !errors.Is(err, ErrEmailExist) {
		t.Fatalf("duplicate email: got %v, want ErrEmailExist", err)
	}

	logged, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "taro@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.AccessToken == "" {
		t.Fatal("login should return a token")
	}

	_, err = svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "taro@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestGetUserByIdCountsAndFollowState(t *testing.T) {
	svc, userRepo, followRepo := newTestUserService()
	_ = userRepo.CreateUser(context.Background(), &model.User{Name: "alice", Email: "alice@example.com"})
	_ = userRepo.CreateUser(context.Background(), &model.User{Name: "bob", Email: "bob@example.com"})
	followRepo.follows = []*model.UserFollow{{FollowerID: 2, FollowingID: 1}}

	viewed, err := svc.GetUserById(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("GetUserById: %v", err)
	}
	if viewed.FollowersCount != 1 {
		t.Fatalf("followersCount: got %d, want 1", viewed.FollowersCount)
	}
	if !viewed.IsFollowing {
		t.Fatal("bob follows alice, isFollowing should be true")
	}

	// 匿名访问不计算关注状态
	anon, err := svc.GetUserById(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("GetUserById anonymous: %v", err)
	}
	if anon.IsFollowing {
		t.Fatal("anonymous viewer should not see isFollowing=true")
	}

	if _, err = svc.GetUserById(context.Background(), 42, 0); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user: got %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, userRepo, _ := newTestUserService()
	_ = userRepo.CreateUser(context.Background(), &model.User{Name: "alice", Email: "alice@example.com"})
	_ = userRepo.CreateUser(context.Background(), &model.User{Name: "bob", Email: "bob@example.com"})

	_, err := svc.UpdateProfile(context.Background(), 2, &dto.UpdateUserDTO{Email: ptrStr("alice@example.com")})
	if !errors.Is(err, ErrEmailExist) {
		t.Fatalf("email conflict: got %v, want ErrEmailExist", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), 2, &dto.UpdateUserDTO{
		Name: ptrStr("bobby"),
		Bio:  ptrStr("travel addict"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "bobby" || updated.Bio == nil || *updated.Bio != "travel addict" {
		t.Fatalf("updated profile: %+v", updated)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestUserService()
	_, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Name:     "taro",
		Email:    "taro@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	err = svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{
		CurrentPassword: "secret123",
		NewPassword:     "next-secret",
		ConfirmPassword: "mismatch",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("confirm mismatch: got %v, want ErrPasswordMismatch", err)
	}

	err = svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{
		CurrentPassword: "wrong",
		NewPassword:     "next-secret",
		ConfirmPassword: "next-secret",
	})
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("wrong current password: got %v, want ErrPasswordIncorrect", err)
	}

	err = svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordDTO{
		CurrentPassword: "secret123",
		NewPassword:     "next-secret",
		ConfirmPassword: "next-secret",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err = svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "taro@example.com",
		Password: "next-secret",
	}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}
