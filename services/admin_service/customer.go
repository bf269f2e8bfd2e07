package admin_service

import (
	"context"
	"fmt"
	"time"

	"bazaar-go-admin/db"
	"bazaar-go-admin/inout"
	"bazaar-go-admin/model"
	"bazaar-go-admin/services/stats_service"
)

type CustomerService struct {
	store stats_service.RecordStore
}

func NewCustomerService(store stats_service.RecordStore) *CustomerService {
	return &CustomerService{store: store}
}

// GetCustomerList 客户列表
// 订单数与消费额按操作者可见域重算，商家管理员只看到与本商家有成交的部分
func (s *CustomerService) GetCustomerList(ctx context.Context, actor *Actor) ([]inout.AdminCustomer, error) {
	var users []model.User
	if err := db.Dao.Where("role = ?", model.RoleCustomer).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("查询客户列表失败: %w", err)
	}

	orders, err := s.store.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询订单快照失败: %w", err)
	}
	products, err := s.store.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询商品快照失败: %w", err)
	}
	productIndex := stats_service.BuildProductIndex(products)

	// 按用户UUID归集域内订单
	type spend struct {
		orders int
		total  float64
	}
	spendByUser := make(map[string]*spend)
	for i := range orders {
		subtotal, ok := stats_service.OrderSubtotal(&orders[i], productIndex, actor.Scope)
		if !ok {
			continue
		}
		sp := spendByUser[orders[i].UserId]
		if sp == nil {
			sp = &spend{}
			spendByUser[orders[i].UserId] = sp
		}
		sp.orders++
		sp.total += subtotal
	}

	result := make([]inout.AdminCustomer, 0, len(users))
	for _, user := range users {
		name := user.FullName
		if name == "" {
			name = user.Username
		}

		// 注册时间缺失时回退为当前时间，与前端的相对时间展示保持可渲染
		joinedAt := user.CreateTime
		if joinedAt.IsZero() {
			joinedAt = time.Now()
		}

		customer := inout.AdminCustomer{
			UserId:   user.Uuid,
			Name:     name,
			Phone:    user.Phone,
			Email:    user.Email,
			JoinedAt: joinedAt.UTC().Format(time.RFC3339),
		}
		if sp := spendByUser[user.Uuid]; sp != nil {
			customer.Orders = sp.orders
			customer.TotalSpent = sp.total
		}
		result = append(result, customer)
	}
	return result, nil
}
