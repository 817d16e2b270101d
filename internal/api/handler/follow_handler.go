package handler

import (
	"Nokoroa/internal/pkg/response"
	"Nokoroa/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.followSvc.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.followSvc.Unfollow(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) CheckFollowStatus(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	status, err := s.followSvc.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	userID, err := s.targetUserID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)
	page, err := s.followSvc.GetFollowers(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *FollowHandler) GetFollowing(c *gin.Context) {
	userID, err := s.targetUserID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := getPagination(c)
	page, err := s.followSvc.GetFollowing(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *FollowHandler) GetFollowerCount(c *gin.Context) {
	userID, err := s.targetUserID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	count, err := s.followSvc.GetFollowerCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, count)
}

func (s *FollowHandler) GetFollowingCount(c *gin.Context) {
	userID, err := s.targetUserID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	count, err := s.followSvc.GetFollowingCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, count)
}

// targetUserID 优先取路径参数，缺省时落回当前登录用户。
func (s *FollowHandler) targetUserID(c *gin.Context) (uint64, error) {
	idStr := c.Param("userId")
	if idStr == "" {
		return c.GetUint64("user_id"), nil
	}
	return strconv.ParseUint(idStr, 10, 64)
}
