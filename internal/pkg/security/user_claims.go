package security

import "github.com/golang-jwt/jwt/v5"

// UserClaims 外部身份服务签发的会话令牌载荷
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
