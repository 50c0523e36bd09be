package response

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// List 列表返回，不带分页游标
func List(ctx *gin.Context, data interface{}, total int64) {
	ctx.JSON(http.StatusOK, dto.ListResponse{
		Data:  data,
		Total: total,
	})
}

// Page 列表返回，带 hasNextPage
func Page(ctx *gin.Context, data interface{}, total int64, hasNextPage bool) {
	ctx.JSON(http.StatusOK, dto.ListResponse{
		Data:        data,
		Total:       total,
		HasNextPage: &hasNextPage,
	})
}

// Item 单实体返回
func Item(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.ItemResponse{
		Data: data,
	})
}

// Raw 不加信封直接返回，Slack 转发类接口使用
func Raw(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Fail 失败返回封装，业务码与 HTTP 状态码一致
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(businessCode, dto.ErrorResponse{
		Code:    businessCode,
		Message: message,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
