package inout

// VendorCreateReq 创建商家请求
type VendorCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Description string `json:"description"`
	LogoUrl     string `json:"logo_url"`
}

// VendorUpdateReq 更新商家请求，零值字段不更新
type VendorUpdateReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoUrl     string `json:"logo_url"`
}

// VendorListReq 商家列表查询参数
type VendorListReq struct {
	ActiveOnly bool `form:"active_only,default=true"`
}

// AssignVendorAdminReq 指派商家管理员请求
type AssignVendorAdminReq struct {
	UserId int `json:"user_id" binding:"required"`
}

// VendorAdminItem 商家管理员列表项
type VendorAdminItem struct {
	UserId   int    `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	BoundAt  string `json:"bound_at"`
}
