package router

import (
	"bazaar-go-admin/api"
	"bazaar-go-admin/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func Init(r *gin.Engine) {
	// 使用 cookie 存储会话数据，验证码依赖会话
	r.Use(sessions.Sessions("mysession", cookie.NewStore([]byte("captch"))))

	authGroup := r.Group("")
	{
		authGroup.POST("/auth/login", api.Auth.Login)
		authGroup.GET("/auth/captcha", api.Auth.Captcha)

		authGroup.Use(middleware.AdminJWTAuth())
		authGroup.POST("/auth/logout", api.Auth.Logout)
	}
}
