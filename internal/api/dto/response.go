package dto

// ListResponse 表格类接口统一信封
type ListResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	HasNextPage *bool       `json:"hasNextPage,omitempty"`
}

// ItemResponse 单实体接口统一信封
type ItemResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse 错误信封
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
