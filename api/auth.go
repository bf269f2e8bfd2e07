package api

import (
	"fmt"
	"net/http"
	"time"

	"bazaar-go-admin/db"
	"bazaar-go-admin/inout"
	"bazaar-go-admin/model"
	"bazaar-go-admin/pkg/jwt"
	"bazaar-go-admin/pkg/monitoring"
	"bazaar-go-admin/pkg/security"
	"bazaar-go-admin/redis"
	"bazaar-go-admin/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

var Auth = &auth{}

type auth struct {
}

func (auth) Captcha(c *gin.Context) {
	svg, code := utils.GenerateSVG(80, 40)
	session := sessions.Default(c)
	session.Set("captch", code)
	session.Save()
	// 设置 Content-Type 为 "image/svg+xml"
	c.Header("Content-Type", "image/svg+xml; charset=utf-8")
	// 返回验证码
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

func (auth) Login(c *gin.Context) {
	var params inout.LoginReq
	err := c.Bind(&params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	// 验证输入安全性
	if err := security.ValidateInput(params.Username); err != nil {
		Resp.Err(c, 20001, "用户名包含非法字符")
		return
	}

	session := sessions.Default(c)
	if params.Captcha != session.Get("captch") {
		Resp.Err(c, 20001, "验证码不正确")
		return
	}

	var info model.User
	db.Dao.Model(model.User{}).Where("username = ?", params.Username).Find(&info)
	if info.Id == 0 {
		Resp.Err(c, 20001, "账号或密码不正确")
		return
	}
	if !info.Enable {
		Resp.Err(c, 20002, "账号已被禁用")
		return
	}

	if !security.CheckPasswordHash(params.Password, info.PasswordBcrypt) {
		Resp.Err(c, 20001, "账号或密码不正确")
		return
	}

	// 管理端与买家端使用不同签发来源的令牌
	tokenType := jwt.TokenTypeApp
	if info.IsGlobalAdmin() || info.Role == model.RoleVendorAdmin {
		tokenType = jwt.TokenTypeAdmin
	}

	jwtManager := jwt.NewJWTManager(tokenType)
	token, err := jwtManager.GenerateToken(info.Id, info.Role)
	if err != nil {
		Resp.Err(c, 20001, "生成令牌失败")
		return
	}

	// 记录在线令牌，重复登录覆盖旧值；缓存不可用不阻断登录
	_ = redis.StoreToken(fmt.Sprintf("%d", info.Id), token, 24*time.Hour)

	monitoring.RecordUserLogin()

	Resp.Succ(c, inout.LoginRes{
		AccessToken: token,
		Role:        info.Role,
	})
}

func (auth) Logout(c *gin.Context) {
	if uid, err := utils.GetUid(c); err == nil {
		redis.DeleteToken(fmt.Sprintf("%d", uid))
	}
	Resp.Succ(c, true)
}
