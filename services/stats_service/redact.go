package stats_service

import "bazaar-go-admin/model/market_model"

// RedactOrder 返回按可见域脱敏后的订单浅拷贝，原订单不被修改
// items 仅保留域内行项目，total 按可见行项目重新求和；全局可见域原样返回
func RedactOrder(order market_model.Order, products map[string]*market_model.Product, scope Scope) market_model.Order {
	if scope.IsGlobal() {
		return order
	}
	a := apportionOrder(&order, products, scope)
	redacted := order
	redacted.Items = a.Items
	if redacted.Items == nil {
		redacted.Items = []market_model.OrderItem{}
	}
	redacted.Total = a.Subtotal
	return redacted
}

// RedactOrders 批量脱敏，用于面向商家可见域的订单列表
func RedactOrders(orders []market_model.Order, products map[string]*market_model.Product, scope Scope) []market_model.Order {
	if scope.IsGlobal() {
		return orders
	}
	result := make([]market_model.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, RedactOrder(order, products, scope))
	}
	return result
}
