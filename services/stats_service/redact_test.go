package stats_service

import (
	"testing"

	"bazaar-go-admin/model/market_model"

	"github.com/stretchr/testify/assert"
)

func redactFixture() (market_model.Order, map[string]*market_model.Product) {
	order := market_model.Order{
		Id:     "o1",
		UserId: "u1",
		Status: "paid",
		Total:  999, // 客户端声明值，不可信
		Items: []market_model.OrderItem{
			{ProductId: "p1", Name: "茶壶", Quantity: 2, Price: 10},
			{ProductId: "p2", Name: "杯子", Quantity: 1, Price: 20},
			{ProductId: "ghost", Name: "幽灵商品", Quantity: 1, Price: 50},
		},
	}
	products := map[string]*market_model.Product{
		"p1": {Id: "p1", VendorId: "v1", Name: "茶壶", Price: 10},
		"p2": {Id: "p2", VendorId: "v2", Name: "杯子", Price: 20},
	}
	return order, products
}

func TestRedactOrderGlobalUnchanged(t *testing.T) {
	order, products := redactFixture()

	got := RedactOrder(order, products, GlobalScope())

	assert.Equal(t, order, got, "全局可见域必须原样返回")
	assert.Equal(t, 999.0, got.Total)
	assert.Len(t, got.Items, 3)
}

func TestRedactOrderVendorScope(t *testing.T) {
	order, products := redactFixture()

	got := RedactOrder(order, products, VendorScope("v1"))

	assert.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ProductId)
	assert.Equal(t, 20.0, got.Total, "金额必须按域内行项目重算")

	// 原订单不被修改
	assert.Len(t, order.Items, 3)
	assert.Equal(t, 999.0, order.Total)
}

func TestRedactOrderEmptyScope(t *testing.T) {
	order, products := redactFixture()

	got := RedactOrder(order, products, EmptyScope())

	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestRedactOrderNoMatchingItems(t *testing.T) {
	order, products := redactFixture()

	got := RedactOrder(order, products, VendorScope("v3"))

	assert.NotNil(t, got.Items, "脱敏后必须是空切片而不是nil")
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
	// 其余字段保持不变
	assert.Equal(t, order.Id, got.Id)
	assert.Equal(t, order.Status, got.Status)
}

func TestRedactOrders(t *testing.T) {
	order, products := redactFixture()
	orders := []market_model.Order{order, order}

	got := RedactOrders(orders, products, VendorScope("v2"))

	assert.Len(t, got, 2)
	for _, o := range got {
		assert.Len(t, o.Items, 1)
		assert.Equal(t, "p2", o.Items[0].ProductId)
		assert.Equal(t, 20.0, o.Total)
	}
}
