package admin

import (
	"bazaar-go-admin/middleware"
	"bazaar-go-admin/pkg/cache"
	"bazaar-go-admin/pkg/response"
	"bazaar-go-admin/services/admin_service"
	"bazaar-go-admin/services/public_service"
	"bazaar-go-admin/services/stats_service"

	"github.com/gin-gonic/gin"
)

// DashboardController 仪表盘接口
type DashboardController struct {
	dashboard *stats_service.DashboardService
}

func NewDashboardController() *DashboardController {
	store := stats_service.NewMongoRecordStore()
	return &DashboardController{
		dashboard: stats_service.NewDashboardService(store, cache.GlobalCache),
	}
}

// GetSummary 仪表盘汇总
// 可见域由操作者角色与商家绑定决定，未绑定的商家管理员得到全零汇总而不是报错
func (ctl *DashboardController) GetSummary(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	summary, err := ctl.dashboard.GetSummary(c.Request.Context(), actor.Scope)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "仪表盘数据获取失败")
		return
	}

	response.Success(c, summary)
}

// HandleWS 仪表盘推送连接
// 握手令牌走查询参数，使用带缓存的解析避免高频连接反复校验签名
func (ctl *DashboardController) HandleWS(c *gin.Context) {
	uid, role, err := middleware.ParseAdminTokenCached(c.Query("token"))
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}
	c.Set("uid", uid)
	c.Set("role", role)

	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	public_service.Hub.HandleConnection(c, actor.Uid, actor.Scope.CacheKey())
}
