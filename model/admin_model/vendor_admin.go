package admin_model

import "time"

// VendorAdmin 商家管理员归属关系
// 一个 vendor_admin 用户至多绑定一个商家，绑定缺失时仪表盘按空可见域处理
type VendorAdmin struct {
	Id         int       `json:"id"`
	UserId     int       `json:"user_id"`
	VendorId   string    `json:"vendor_id"`
	CreateTime time.Time `json:"create_time"`
}

func (VendorAdmin) TableName() string {
	return "vendor_admin"
}
