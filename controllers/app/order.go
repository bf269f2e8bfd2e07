package app

import (
	"errors"
	"fmt"

	"bazaar-go-admin/db"
	"bazaar-go-admin/inout"
	"bazaar-go-admin/model"
	"bazaar-go-admin/pkg/response"
	"bazaar-go-admin/services/app_service"
	"bazaar-go-admin/utils"

	"github.com/gin-gonic/gin"
)

// OrderController 买家端订单接口
type OrderController struct {
	orders app_service.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{}
}

// currentUserUuid 当前登录用户的对外UUID，订单记录引用的是它而不是自增ID
func currentUserUuid(c *gin.Context) (string, error) {
	uid, err := utils.GetUid(c)
	if err != nil {
		return "", err
	}

	var user model.User
	if err := db.Dao.First(&user, uid).Error; err != nil {
		return "", fmt.Errorf("查询用户失败: %w", err)
	}
	return user.Uuid, nil
}

// Create 下单
func (ctl *OrderController) Create(c *gin.Context) {
	userUuid, err := currentUserUuid(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	var params inout.CreateOrderReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	order, err := ctl.orders.CreateOrder(c.Request.Context(), userUuid, params)
	if err != nil {
		if errors.Is(err, app_service.ErrUnknownProduct) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, order)
}

// MyOrders 我的订单列表
func (ctl *OrderController) MyOrders(c *gin.Context) {
	userUuid, err := currentUserUuid(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	orders, err := ctl.orders.GetMyOrders(c.Request.Context(), userUuid)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, orders)
}
