package admin

import (
	"errors"

	"bazaar-go-admin/inout"
	"bazaar-go-admin/pkg/response"
	"bazaar-go-admin/services/admin_service"
	"bazaar-go-admin/services/stats_service"

	"github.com/gin-gonic/gin"
)

// OrderController 后台订单接口
type OrderController struct {
	orders *admin_service.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orders: admin_service.NewOrderService(stats_service.NewMongoRecordStore()),
	}
}

// List 订单列表，商家管理员只看到已脱敏的域内订单
func (ctl *OrderController) List(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	var params inout.OrderListReq
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	result, err := ctl.orders.GetOrderList(c.Request.Context(), actor, params)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, result)
}

// UpdateStatus 更新订单状态
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	var params inout.OrderStatusReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := ctl.orders.UpdateOrderStatus(c.Request.Context(), actor, c.Param("id"), params); err != nil {
		if errors.Is(err, admin_service.ErrOrderNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, true)
}
