package stats_service

import (
	"fmt"
	"testing"
	"time"

	"bazaar-go-admin/model/market_model"

	"github.com/stretchr/testify/assert"
)

var aggNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func iso(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// 两商家场景：
// o1（5天前）同时含 v1 与 v2 的商品，客户端声明的 total 是假的；
// o2（45天前）只含 v2 的商品；
// o3 时间戳损坏，只进累计值；
// o4 只含无法解析的商品，不参与任何统计
func aggFixture() *Snapshot {
	return &Snapshot{
		Orders: []market_model.Order{
			{
				Id: "o1", UserId: "u1", Status: "paid", Total: 999,
				CreatedAt: iso(aggNow.Add(-5 * 24 * time.Hour)),
				Items: []market_model.OrderItem{
					{ProductId: "p1", Name: "茶壶", Quantity: 2, Price: 10},
					{ProductId: "p2", Name: "杯子", Quantity: 1, Price: 20},
				},
			},
			{
				Id: "o2", UserId: "u2", Status: "delivered", Total: 20,
				CreatedAt: iso(aggNow.Add(-45 * 24 * time.Hour)),
				Items: []market_model.OrderItem{
					{ProductId: "p2", Name: "杯子", Quantity: 1, Price: 20},
				},
			},
			{
				Id: "o3", UserId: "u1", Status: "paid", Total: 10,
				CreatedAt: "not-a-time",
				Items: []market_model.OrderItem{
					{ProductId: "p1", Name: "茶壶", Quantity: 1, Price: 10},
				},
			},
			{
				Id: "o4", UserId: "u3", Status: "paid", Total: 50,
				CreatedAt: iso(aggNow.Add(-24 * time.Hour)),
				Items: []market_model.OrderItem{
					{ProductId: "ghost", Name: "幽灵商品", Quantity: 1, Price: 50},
				},
			},
		},
		Products: []market_model.Product{
			{Id: "p1", VendorId: "v1", Name: "茶壶", Price: 10, Status: "published",
				CreatedAt: iso(aggNow.Add(-10 * 24 * time.Hour))},
			{Id: "p2", VendorId: "v2", Name: "杯子", Price: 20, Status: "published",
				CreatedAt: iso(aggNow.Add(-40 * 24 * time.Hour))},
			{Id: "p3", VendorId: "", Name: "孤儿商品", Price: 5, Status: "draft",
				CreatedAt: iso(aggNow.Add(-100 * 24 * time.Hour))},
		},
		Vendors: []market_model.Vendor{
			// v2 故意缺席，业绩表要回退到占位名
			{Id: "v1", Name: "Alpha", Slug: "alpha", IsActive: true},
		},
	}
}

func TestAggregateGlobalScope(t *testing.T) {
	summary := Aggregate(aggFixture(), GlobalScope(), aggNow)

	// 累计值：o4 不参与，o3 虽时间损坏仍计入
	assert.Equal(t, 70.0, summary.TotalRevenue, "金额必须按行项目重算，忽略声明的 total")
	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 3, summary.TotalProducts)

	// 环比：current 只有 o1(40)，previous 只有 o2(20)
	assert.Equal(t, 100.0, summary.RevenueChange)
	assert.Equal(t, 0.0, summary.OrdersChange)
	assert.Equal(t, 0.0, summary.CustomersChange)
	// 建品环比：p1 在本期，p2 在上期
	assert.Equal(t, 0.0, summary.ProductsChange)

	// 商家业绩：v2 收入 40 排前，名称回退占位
	assert.Len(t, summary.VendorStats, 2)
	assert.Equal(t, "v2", summary.VendorStats[0].VendorId)
	assert.Equal(t, "Unknown Vendor", summary.VendorStats[0].VendorName)
	assert.Equal(t, 40.0, summary.VendorStats[0].TotalRevenue)
	assert.Equal(t, 2, summary.VendorStats[0].TotalSales)
	assert.Equal(t, "v1", summary.VendorStats[1].VendorId)
	assert.Equal(t, "Alpha", summary.VendorStats[1].VendorName)
	assert.Equal(t, 30.0, summary.VendorStats[1].TotalRevenue)
	assert.Equal(t, 3, summary.VendorStats[1].TotalSales)

	// 热销商品按收入降序
	assert.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "杯子", summary.TopProducts[0].Name)
	assert.Equal(t, 40.0, summary.TopProducts[0].Revenue)
	assert.Equal(t, "茶壶", summary.TopProducts[1].Name)
	assert.Equal(t, 30.0, summary.TopProducts[1].Revenue)

	// 按天序列：只有可解析时间的 o1/o2，升序且不补零
	assert.Len(t, summary.DailyStats, 2)
	assert.Equal(t, "2026-01-15", summary.DailyStats[0].Date)
	assert.Equal(t, 20.0, summary.DailyStats[0].Revenue)
	assert.Equal(t, 1, summary.DailyStats[0].Orders)
	assert.Equal(t, "2026-02-24", summary.DailyStats[1].Date)
	assert.Equal(t, 40.0, summary.DailyStats[1].Revenue)

	// 最近订单：按输入顺序取参与统计的订单，全局不脱敏
	assert.Len(t, summary.RecentOrders, 3)
	assert.Equal(t, "o1", summary.RecentOrders[0].Id)
	assert.Equal(t, 999.0, summary.RecentOrders[0].Total)
	assert.Equal(t, "o2", summary.RecentOrders[1].Id)
	assert.Equal(t, "o3", summary.RecentOrders[2].Id)
}

func TestAggregateVendorScope(t *testing.T) {
	summary := Aggregate(aggFixture(), VendorScope("v1"), aggNow)

	// o1 域内部分 20，o3 域内 10，o2 无域内行项目
	assert.Equal(t, 30.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 1, summary.TotalCustomers)
	assert.Equal(t, 1, summary.TotalProducts)

	// 上期无成交：有增长则环比 100
	assert.Equal(t, 100.0, summary.RevenueChange)
	assert.Equal(t, 100.0, summary.OrdersChange)
	assert.Equal(t, 100.0, summary.CustomersChange)
	assert.Equal(t, 100.0, summary.ProductsChange)

	// 商家可见域不返回跨商家业绩表
	assert.Nil(t, summary.VendorStats)

	assert.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "茶壶", summary.TopProducts[0].Name)
	assert.Equal(t, 30.0, summary.TopProducts[0].Revenue)
	assert.Equal(t, 3, summary.TopProducts[0].Sales)

	// 最近订单已脱敏：o1 只剩 v1 的行项目，金额重算
	assert.Len(t, summary.RecentOrders, 2)
	assert.Equal(t, "o1", summary.RecentOrders[0].Id)
	assert.Len(t, summary.RecentOrders[0].Items, 1)
	assert.Equal(t, "p1", summary.RecentOrders[0].Items[0].ProductId)
	assert.Equal(t, 20.0, summary.RecentOrders[0].Total)
}

func TestAggregateEmptyScope(t *testing.T) {
	summary := Aggregate(aggFixture(), EmptyScope(), aggNow)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.TotalCustomers)
	assert.Zero(t, summary.TotalProducts)
	assert.Zero(t, summary.RevenueChange)
	assert.Empty(t, summary.RecentOrders)
	assert.Nil(t, summary.VendorStats)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.DailyStats)
}

func TestAggregateRankingTies(t *testing.T) {
	snap := &Snapshot{
		Orders: []market_model.Order{
			{
				Id: "o1", UserId: "u1", Status: "paid",
				CreatedAt: iso(aggNow.Add(-24 * time.Hour)),
				Items: []market_model.OrderItem{
					{ProductId: "pb", Name: "乙", Quantity: 1, Price: 10},
					{ProductId: "pa", Name: "甲", Quantity: 1, Price: 10},
				},
			},
		},
		Products: []market_model.Product{
			{Id: "pa", VendorId: "v2", Name: "甲", Price: 10},
			{Id: "pb", VendorId: "v1", Name: "乙", Price: 10},
		},
		Vendors: []market_model.Vendor{
			{Id: "v1", Name: "一号"},
			{Id: "v2", Name: "二号"},
		},
	}

	summary := Aggregate(snap, GlobalScope(), aggNow)

	// 收入相同：商家按ID升序，商品按ID升序，保证输出稳定
	assert.Equal(t, "v1", summary.VendorStats[0].VendorId)
	assert.Equal(t, "v2", summary.VendorStats[1].VendorId)
	assert.Equal(t, "甲", summary.TopProducts[0].Name)
	assert.Equal(t, "乙", summary.TopProducts[1].Name)
}

func TestAggregateTopProductLimit(t *testing.T) {
	snap := &Snapshot{}
	var items []market_model.OrderItem
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("p%d", i)
		snap.Products = append(snap.Products, market_model.Product{
			Id: id, VendorId: "v1", Name: id, Price: float64(i + 1),
		})
		items = append(items, market_model.OrderItem{
			ProductId: id, Name: id, Quantity: 1, Price: float64(i + 1),
		})
	}
	snap.Orders = []market_model.Order{{
		Id: "o1", UserId: "u1", Status: "paid",
		CreatedAt: iso(aggNow.Add(-24 * time.Hour)),
		Items:     items,
	}}

	summary := Aggregate(snap, GlobalScope(), aggNow)

	assert.Len(t, summary.TopProducts, 5)
	// 收入最高的在前
	assert.Equal(t, 7.0, summary.TopProducts[0].Revenue)
	assert.Equal(t, 3.0, summary.TopProducts[4].Revenue)
}

func TestAggregateRecentOrderLimit(t *testing.T) {
	snap := &Snapshot{
		Products: []market_model.Product{
			{Id: "p1", VendorId: "v1", Name: "茶壶", Price: 10},
		},
	}
	for i := 0; i < 8; i++ {
		snap.Orders = append(snap.Orders, market_model.Order{
			Id: fmt.Sprintf("o%d", i), UserId: "u1", Status: "paid",
			CreatedAt: iso(aggNow.Add(-time.Duration(i+1) * 24 * time.Hour)),
			Items: []market_model.OrderItem{
				{ProductId: "p1", Name: "茶壶", Quantity: 1, Price: 10},
			},
		})
	}

	summary := Aggregate(snap, GlobalScope(), aggNow)

	assert.Len(t, summary.RecentOrders, 5)
	assert.Equal(t, "o0", summary.RecentOrders[0].Id)
	assert.Equal(t, "o4", summary.RecentOrders[4].Id)
	assert.Equal(t, 8, summary.TotalOrders)
}
