package stats_service

import (
	"sort"
	"time"

	"bazaar-go-admin/inout"
	"bazaar-go-admin/model/market_model"
)

const (
	recentOrderLimit = 5
	topProductLimit  = 5
)

type vendorAccum struct {
	revenue float64
	sales   int
}

type productAccum struct {
	name    string
	revenue float64
	sales   int
}

type dailyAccum struct {
	revenue float64
	orders  int
}

// windowAccum 单个增长窗口的累计值
type windowAccum struct {
	revenue   float64
	orders    int
	customers map[string]struct{}
}

func newWindowAccum() *windowAccum {
	return &windowAccum{customers: make(map[string]struct{})}
}

func (w *windowAccum) add(subtotal float64, userId string) {
	w.revenue += subtotal
	w.orders++
	if userId != "" {
		w.customers[userId] = struct{}{}
	}
}

// Aggregate 对快照做单遍扫描，产出指定可见域下的仪表盘汇总
// 所有金额一律按 Σ(quantity × price) 重算，订单自带的 total 不参与聚合；
// 无法解析创建时间的订单不进窗口与按天序列，但仍计入累计值
func Aggregate(snap *Snapshot, scope Scope, now time.Time) *inout.AdminSummary {
	productIndex := BuildProductIndex(snap.Products)
	vendorNames := make(map[string]string, len(snap.Vendors))
	for _, v := range snap.Vendors {
		vendorNames[v.Id] = v.Name
	}

	summary := &inout.AdminSummary{
		RecentOrders: []market_model.Order{},
		TopProducts:  []inout.TopProduct{},
		DailyStats:   []inout.DailyStat{},
	}

	customers := make(map[string]struct{})
	vendorStats := make(map[string]*vendorAccum)
	productStats := make(map[string]*productAccum)
	dailyStats := make(map[string]*dailyAccum)
	current := newWindowAccum()
	previous := newWindowAccum()

	for i := range snap.Orders {
		order := &snap.Orders[i]
		a := apportionOrder(order, productIndex, scope)
		if !a.Qualifies {
			continue
		}

		summary.TotalRevenue += a.Subtotal
		summary.TotalOrders++
		if order.UserId != "" {
			customers[order.UserId] = struct{}{}
		}

		for _, item := range a.Items {
			lineRevenue := float64(item.Quantity) * item.Price

			// 商家业绩：无商家归属的商品不进该表
			if p := productIndex[item.ProductId]; p != nil && p.VendorId != "" {
				vs := vendorStats[p.VendorId]
				if vs == nil {
					vs = &vendorAccum{}
					vendorStats[p.VendorId] = vs
				}
				vs.revenue += lineRevenue
				vs.sales += item.Quantity
			}

			ps := productStats[item.ProductId]
			if ps == nil {
				ps = &productAccum{name: item.Name}
				productStats[item.ProductId] = ps
			}
			ps.revenue += lineRevenue
			ps.sales += item.Quantity
		}

		if createdAt, ok := parseRecordTime(order.CreatedAt); ok {
			key := dayKey(createdAt)
			ds := dailyStats[key]
			if ds == nil {
				ds = &dailyAccum{}
				dailyStats[key] = ds
			}
			ds.revenue += a.Subtotal
			ds.orders++

			switch classifyWindow(now, createdAt) {
			case bucketCurrent:
				current.add(a.Subtotal, order.UserId)
			case bucketPrevious:
				previous.add(a.Subtotal, order.UserId)
			}
		}

		// 调用方保证订单按创建时间倒序，最近订单直接取前N条
		if len(summary.RecentOrders) < recentOrderLimit {
			summary.RecentOrders = append(summary.RecentOrders, RedactOrder(*order, productIndex, scope))
		}
	}

	summary.TotalCustomers = len(customers)

	// 商品总数与建品环比同样受可见域约束
	var productsCurrent, productsPrevious float64
	for i := range snap.Products {
		p := &snap.Products[i]
		if !scope.Allows(p.VendorId) {
			continue
		}
		summary.TotalProducts++
		if createdAt, ok := parseRecordTime(p.CreatedAt); ok {
			switch classifyWindow(now, createdAt) {
			case bucketCurrent:
				productsCurrent++
			case bucketPrevious:
				productsPrevious++
			}
		}
	}

	summary.RevenueChange = PctChange(current.revenue, previous.revenue)
	summary.OrdersChange = PctChange(float64(current.orders), float64(previous.orders))
	summary.CustomersChange = PctChange(float64(len(current.customers)), float64(len(previous.customers)))
	summary.ProductsChange = PctChange(productsCurrent, productsPrevious)

	if scope.IsGlobal() {
		summary.VendorStats = rankVendorStats(vendorStats, vendorNames)
	}
	summary.TopProducts = rankTopProducts(productStats)
	summary.DailyStats = sortDailyStats(dailyStats)

	return summary
}

// rankVendorStats 按收入降序排列，收入相同按商家ID升序保证输出稳定
func rankVendorStats(stats map[string]*vendorAccum, names map[string]string) []inout.VendorStat {
	result := make([]inout.VendorStat, 0, len(stats))
	for id, acc := range stats {
		name := names[id]
		if name == "" {
			name = "Unknown Vendor"
		}
		result = append(result, inout.VendorStat{
			VendorId:     id,
			VendorName:   name,
			TotalRevenue: acc.revenue,
			TotalSales:   acc.sales,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalRevenue != result[j].TotalRevenue {
			return result[i].TotalRevenue > result[j].TotalRevenue
		}
		return result[i].VendorId < result[j].VendorId
	})
	return result
}

// rankTopProducts 按收入降序取前N，收入相同按商品ID升序
func rankTopProducts(stats map[string]*productAccum) []inout.TopProduct {
	type ranked struct {
		id  string
		acc *productAccum
	}
	all := make([]ranked, 0, len(stats))
	for id, acc := range stats {
		all = append(all, ranked{id: id, acc: acc})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].acc.revenue != all[j].acc.revenue {
			return all[i].acc.revenue > all[j].acc.revenue
		}
		return all[i].id < all[j].id
	})
	if len(all) > topProductLimit {
		all = all[:topProductLimit]
	}
	result := make([]inout.TopProduct, 0, len(all))
	for _, r := range all {
		result = append(result, inout.TopProduct{
			Name:    r.acc.name,
			Sales:   r.acc.sales,
			Revenue: r.acc.revenue,
		})
	}
	return result
}

// sortDailyStats 按日期升序输出，无成交的日期不补零
func sortDailyStats(stats map[string]*dailyAccum) []inout.DailyStat {
	result := make([]inout.DailyStat, 0, len(stats))
	for date, acc := range stats {
		result = append(result, inout.DailyStat{
			Date:    date,
			Revenue: acc.revenue,
			Orders:  acc.orders,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
