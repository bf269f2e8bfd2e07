package inout

import "bazaar-go-admin/model/market_model"

// CreateOrderReq 下单请求
type CreateOrderReq struct {
	Items    []market_model.OrderItem     `json:"items" binding:"required,min=1,dive"`
	Shipping market_model.ShippingAddress `json:"shipping" binding:"required"`
	Total    float64                      `json:"total" binding:"gte=0"`
}

// OrderListReq 后台订单列表查询参数
type OrderListReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
	No       string `form:"no"`
}

// OrderListResp 后台订单列表响应
type OrderListResp struct {
	Total    int                  `json:"total"`
	Items    []market_model.Order `json:"items"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// OrderStatusReq 订单状态更新请求
type OrderStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}
