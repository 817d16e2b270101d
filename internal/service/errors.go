package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid parameters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExist         = errors.New("email is already registered")
	ErrPasswordIncorrect  = errors.New("current password is incorrect")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostForbidden      = errors.New("you are not the author of this post")
	ErrFavoriteExist      = errors.New("post is already in favorites")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrFollowExist        = errors.New("already following this user")
	ErrFollowNotFound     = errors.New("follow relation not found")
	ErrFollowSelf         = errors.New("cannot follow yourself")
	ErrFileNotSupported   = errors.New("only image files are allowed")
	ErrFileTooLarge       = errors.New("file exceeds the 5MB size limit")
	UnauthorizedError     = errors.New("unauthorized")
	UnExpectedError       = errors.New("unexpected error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrInvalidCredentials: Unauthorized,
	ErrUserNotFound:       NotFound,
	ErrEmailExist:         Conflict,
	ErrPasswordIncorrect:  BadRequest,
	ErrPasswordMismatch:   BadRequest,
	ErrPostNotFound:       NotFound,
	ErrPostForbidden:      Forbidden,
	ErrFavoriteExist:      Conflict,
	ErrFavoriteNotFound:   NotFound,
	ErrFollowExist:        Conflict,
	ErrFollowNotFound:     NotFound,
	ErrFollowSelf:         BadRequest,
	ErrFileNotSupported:   BadRequest,
	ErrFileTooLarge:       BadRequest,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
