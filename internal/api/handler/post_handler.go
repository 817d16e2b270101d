package handler

import (
	"Nokoroa/internal/api/dto"
	"Nokoroa/internal/pkg/consts"
	"Nokoroa/internal/pkg/minio"
	"Nokoroa/internal/pkg/response"
	"Nokoroa/internal/pkg/util"
	"Nokoroa/internal/service"
	log "log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreatePostDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	postDTO, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postDTO)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	postDTO, err := s.postSvc.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postDTO)
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var listDTO dto.ListPostsDTO
	err := c.ShouldBindQuery(&listDTO)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = util.ValidateDTO(&listDTO); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.postSvc.ListPosts(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) SearchPosts(c *gin.Context) {
	var searchDTO dto.SearchPostsDTO
	err := c.ShouldBindQuery(&searchDTO)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	// tags 既可以逗号分隔也可以重复出现
	searchDTO.Tags = util.SplitTagParam(searchDTO.Tags)
	if err = util.ValidateDTO(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.postSvc.SearchPosts(c.Request.Context(), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) SearchPostsByLocation(c *gin.Context) {
	var searchDTO dto.SearchByLocationDTO
	err := c.ShouldBindQuery(&searchDTO)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = util.ValidateDTO(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.postSvc.SearchPostsByLocation(c.Request.Context(), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var updateDTO dto.UpdatePostDTO
	err = c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	postDTO, err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, postDTO)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	err = s.postSvc.DeletePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) GetTagStats(c *gin.Context) {
	stats, err := s.postSvc.GetTagStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *PostHandler) GetLocations(c *gin.Context) {
	locations, err := s.postSvc.GetLocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, locations)
}

func (s *PostHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if file.Size > consts.MaxUploadSize {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := consts.PostImagePrefix + time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, map[string]any{
		"url":  minio.GetPublicURL(fileKey),
		"mime": contentType,
		"size": file.Size,
	})
}

func (s *PostHandler) parsePostID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
