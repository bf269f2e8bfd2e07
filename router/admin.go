package router

import (
	"bazaar-go-admin/controllers/admin"
	"bazaar-go-admin/inout"
	"bazaar-go-admin/middleware"

	"github.com/gin-gonic/gin"
)

// InitAdmin 管理后台路由
// 仪表盘与订单列表对商家管理员开放（服务层按可见域脱敏），
// 商家维护仅平台管理员可用，管理员指派仅超级管理员可用
func InitAdmin(r *gin.Engine) {
	dashboard := admin.NewDashboardController()
	vendors := admin.NewVendorController()
	orders := admin.NewOrderController()
	customers := admin.NewCustomerController()

	// WebSocket握手在控制器内自行校验查询参数携带的token
	r.GET("/ws/dashboard", dashboard.HandleWS)

	group := r.Group("/api/admin", middleware.AdminJWTAuth(), middleware.RequireAdminRole())
	{
		group.GET("/dashboard/summary", dashboard.GetSummary)

		group.GET("/orders", middleware.ValidationMiddleware(&inout.OrderListReq{}), orders.List)
		group.GET("/customers", customers.List)

		group.GET("/vendors", vendors.List)
		group.GET("/vendors/:id", vendors.Detail)
		// 更新接口对商家管理员开放，控制器内校验归属
		group.PATCH("/vendors/:id", vendors.Update)

		// 商家维护
		globalOnly := group.Group("", middleware.RequireGlobalAdmin())
		{
			globalOnly.POST("/vendors", vendors.Create)
			globalOnly.DELETE("/vendors/:id", vendors.Deactivate)
			globalOnly.GET("/vendors/:id/admins", vendors.ListAdmins)
			globalOnly.PATCH("/orders/:id/status", orders.UpdateStatus)
		}

		// 管理员指派
		superOnly := group.Group("", middleware.RequireSuperAdmin())
		{
			superOnly.POST("/vendors/:id/admins", vendors.AssignAdmin)
			superOnly.DELETE("/vendors/:id/admins/:userId", vendors.RemoveAdmin)
		}
	}
}
