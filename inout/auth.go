package inout

// LoginReq 登录请求
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Captcha  string `json:"captcha"`
}

// LoginRes 登录响应
type LoginRes struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
}
