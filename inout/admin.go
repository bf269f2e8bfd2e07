package inout

import "bazaar-go-admin/model/market_model"

// AdminSummary 仪表盘汇总数据
// vendor_stats 仅全局可见域返回；recent_orders 在商家可见域下已脱敏
type AdminSummary struct {
	TotalRevenue    float64              `json:"total_revenue"`
	TotalOrders     int                  `json:"total_orders"`
	TotalCustomers  int                  `json:"total_customers"`
	TotalProducts   int                  `json:"total_products"`
	RevenueChange   float64              `json:"revenue_change"`
	OrdersChange    float64              `json:"orders_change"`
	CustomersChange float64              `json:"customers_change"`
	ProductsChange  float64              `json:"products_change"`
	RecentOrders    []market_model.Order `json:"recent_orders"`
	VendorStats     []VendorStat         `json:"vendor_stats,omitempty"`
	TopProducts     []TopProduct         `json:"top_products"`
	DailyStats      []DailyStat          `json:"daily_stats"`
}

// VendorStat 单个商家的累计业绩
type VendorStat struct {
	VendorId     string  `json:"vendor_id"`
	VendorName   string  `json:"vendor_name"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
}

// TopProduct 按收入排序的热销商品
type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// DailyStat 按天聚合的收入与订单量，date 为 UTC 日期 YYYY-MM-DD
type DailyStat struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// AdminCustomer 后台客户列表项
type AdminCustomer struct {
	UserId     string  `json:"user_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"total_spent"`
	JoinedAt   string  `json:"joined_at"`
}
