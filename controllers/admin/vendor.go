package admin

import (
	"errors"
	"strconv"

	"bazaar-go-admin/inout"
	"bazaar-go-admin/pkg/response"
	"bazaar-go-admin/services/admin_service"

	"github.com/gin-gonic/gin"
)

// VendorController 商家管理接口
type VendorController struct {
	vendors admin_service.VendorService
}

func NewVendorController() *VendorController {
	return &VendorController{}
}

// List 商家列表
func (ctl *VendorController) List(c *gin.Context) {
	var params inout.VendorListReq
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	vendors, err := ctl.vendors.GetVendorList(c.Request.Context(), params)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, vendors)
}

// Detail 商家详情
func (ctl *VendorController) Detail(c *gin.Context) {
	vendor, err := ctl.vendors.GetVendorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, admin_service.ErrVendorNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, vendor)
}

// Create 创建商家
func (ctl *VendorController) Create(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	var params inout.VendorCreateReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	vendor, err := ctl.vendors.CreateVendor(c.Request.Context(), actor, params)
	if err != nil {
		if errors.Is(err, admin_service.ErrSlugTaken) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, vendor)
}

// Update 更新商家
// 平台管理员可改任意商家，商家管理员只能改自己绑定的商家
func (ctl *VendorController) Update(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	if !actor.IsGlobalAdmin() && actor.VendorId != c.Param("id") {
		response.Error(c, response.FORBIDDEN, "无权限修改该商家")
		return
	}

	var params inout.VendorUpdateReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := ctl.vendors.UpdateVendor(c.Request.Context(), actor, c.Param("id"), params); err != nil {
		if errors.Is(err, admin_service.ErrVendorNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, true)
}

// Deactivate 下线商家
func (ctl *VendorController) Deactivate(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	if err := ctl.vendors.DeactivateVendor(c.Request.Context(), actor, c.Param("id")); err != nil {
		if errors.Is(err, admin_service.ErrVendorNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, true)
}

// ListAdmins 商家管理员列表
func (ctl *VendorController) ListAdmins(c *gin.Context) {
	admins, err := ctl.vendors.ListAdmins(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, admin_service.ErrVendorNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, admins)
}

// AssignAdmin 指派商家管理员
func (ctl *VendorController) AssignAdmin(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	var params inout.AssignVendorAdminReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	err = ctl.vendors.AssignAdmin(c.Request.Context(), actor, c.Param("id"), params)
	if err != nil {
		switch {
		case errors.Is(err, admin_service.ErrVendorNotFound):
			response.Error(c, response.NOT_FOUND, err.Error())
		case errors.Is(err, admin_service.ErrUserNotFound):
			response.Error(c, response.NOT_FOUND, err.Error())
		case errors.Is(err, admin_service.ErrAlreadyAssigned):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, err.Error())
		}
		return
	}
	response.Success(c, true)
}

// RemoveAdmin 解除商家管理员
func (ctl *VendorController) RemoveAdmin(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	userId, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "用户ID格式错误")
		return
	}

	if err := ctl.vendors.RemoveAdmin(c.Request.Context(), actor, c.Param("id"), userId); err != nil {
		if errors.Is(err, admin_service.ErrUserNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, true)
}
