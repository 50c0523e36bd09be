package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrTimespanInvalid  = errors.New("时间范围参数无效")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrMessageNotFound  = errors.New("消息不存在")
	ErrMessageDuplicate = errors.New("消息已存在")
	ErrSlackUpstream    = errors.New("Slack 接口调用失败")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrTimespanInvalid:  BadRequest,
	ErrUserNotFound:     NotFound,
	ErrMessageNotFound:  NotFound,
	ErrMessageDuplicate: BadRequest,
	ErrSlackUpstream:    InternalServerError,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}
