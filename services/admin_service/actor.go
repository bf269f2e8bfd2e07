package admin_service

import (
	"errors"
	"fmt"

	"bazaar-go-admin/db"
	"bazaar-go-admin/model"
	"bazaar-go-admin/model/admin_model"
	"bazaar-go-admin/services/stats_service"
	"bazaar-go-admin/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Actor 当前请求的操作者及其可见域
type Actor struct {
	Uid      int
	Role     string
	VendorId string // vendor_admin 绑定的商家ID，未绑定为空
	Scope    stats_service.Scope
}

// IsGlobalAdmin 是否为平台管理员
func (a *Actor) IsGlobalAdmin() bool {
	return a.Role == model.RoleAdmin || a.Role == model.RoleSuperAdmin
}

// ResolveActor 从请求上下文解析操作者
// vendor_admin 需要查绑定表确定所属商家，未绑定时得到空可见域而不是报错
func ResolveActor(c *gin.Context) (*Actor, error) {
	uid, err := utils.GetUid(c)
	if err != nil {
		return nil, err
	}
	role, err := utils.GetRole(c)
	if err != nil {
		return nil, err
	}

	vendorId := ""
	if role == model.RoleVendorAdmin {
		var binding admin_model.VendorAdmin
		err := db.Dao.Where("user_id = ?", uid).First(&binding).Error
		if err == nil {
			vendorId = binding.VendorId
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("查询商家绑定失败: %w", err)
		}
	}

	return &Actor{
		Uid:      uid,
		Role:     role,
		VendorId: vendorId,
		Scope:    stats_service.ResolveScope(role, vendorId),
	}, nil
}
