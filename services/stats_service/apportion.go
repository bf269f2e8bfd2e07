package stats_service

import "bazaar-go-admin/model/market_model"

// apportionment 单个订单在某可见域下的分摊结果
// Qualifies 是订单是否参与任何统计的唯一判据：
// 只要有一条域内行项目，订单的客户数/订单数贡献就完整计入，不做拆分
type apportionment struct {
	Items     []market_model.OrderItem
	Subtotal  float64
	Qualifies bool
}

// apportionOrder 逐行项目归属商家并按可见域过滤
// 商品索引查不到的行项目静默跳过，不计入任何统计
func apportionOrder(order *market_model.Order, products map[string]*market_model.Product, scope Scope) apportionment {
	var result apportionment
	for _, item := range order.Items {
		product, ok := products[item.ProductId]
		if !ok {
			continue
		}
		if !scope.Allows(product.VendorId) {
			continue
		}
		result.Items = append(result.Items, item)
		result.Subtotal += float64(item.Quantity) * item.Price
	}
	result.Qualifies = len(result.Items) > 0
	return result
}

// OrderSubtotal 订单在可见域下的重算金额
// 第二个返回值表示订单是否有域内行项目，false 时订单不参与统计
func OrderSubtotal(order *market_model.Order, products map[string]*market_model.Product, scope Scope) (float64, bool) {
	a := apportionOrder(order, products, scope)
	return a.Subtotal, a.Qualifies
}
