package model

import "time"

// 用户角色，与原始记录里的 user_type 对应
const (
	RoleCustomer    = "customer"
	RoleVendorAdmin = "vendor_admin"
	RoleAdmin       = "admin"
	RoleSuperAdmin  = "super_admin"
)

// User 平台用户，后台账号与买家共用一张表
// Uuid 是对外暴露的标识，订单的 user_id 引用该字段
type User struct {
	Id             int       `json:"id"`
	Uuid           string    `json:"uuid"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	PasswordBcrypt string    `json:"-"`
	Enable         bool      `json:"enable"`
	CreateTime     time.Time `json:"create_time"`
	UpdateTime     time.Time `json:"update_time"`
}

func (User) TableName() string {
	return "user"
}

// IsGlobalAdmin 是否拥有全局可见域
func (u *User) IsGlobalAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
