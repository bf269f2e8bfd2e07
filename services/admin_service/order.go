package admin_service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bazaar-go-admin/inout"
	"bazaar-go-admin/model"
	"bazaar-go-admin/model/market_model"
	"bazaar-go-admin/mongodb"
	"bazaar-go-admin/services"
	"bazaar-go-admin/services/public_service"
	"bazaar-go-admin/services/stats_service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrOrderNotFound = errors.New("订单不存在")

type OrderService struct {
	store stats_service.RecordStore
}

func NewOrderService(store stats_service.RecordStore) *OrderService {
	return &OrderService{store: store}
}

func orderColl() *mongo.Collection {
	return mongodb.GetCollection("marketplace", "orders")
}

// 净化分页参数
func sanitizeParams(params inout.OrderListReq) inout.OrderListReq {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 10
	}
	return params
}

// GetOrderList 后台订单列表
// 商家管理员只能看到含本商家行项目的订单，且每条订单会按可见域脱敏
func (s *OrderService) GetOrderList(ctx context.Context, actor *Actor, params inout.OrderListReq) (*inout.OrderListResp, error) {
	params = sanitizeParams(params)

	filter := bson.M{}
	if params.Status != "" {
		filter["status"] = params.Status
	}
	if params.No != "" {
		filter["no"] = bson.M{"$regex": params.No}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := orderColl().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("查询订单列表失败: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []market_model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("解码订单列表失败: %w", err)
	}

	products, err := s.store.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询商品索引失败: %w", err)
	}
	productIndex := stats_service.BuildProductIndex(products)

	// 可见域过滤后再分页，分页结果即脱敏结果
	visible := make([]market_model.Order, 0, len(orders))
	for i := range orders {
		if _, ok := stats_service.OrderSubtotal(&orders[i], productIndex, actor.Scope); ok {
			visible = append(visible, stats_service.RedactOrder(orders[i], productIndex, actor.Scope))
		}
	}

	total := len(visible)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return &inout.OrderListResp{
		Total:    total,
		Items:    visible[start:end],
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// UpdateOrderStatus 更新订单状态，仅平台管理员可操作
func (s *OrderService) UpdateOrderStatus(ctx context.Context, actor *Actor, orderId string, params inout.OrderStatusReq) error {
	status := strings.ToLower(params.Status)

	result, err := orderColl().UpdateOne(ctx,
		bson.M{"_id": orderId},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC().Format(time.RFC3339),
		}})
	if err != nil {
		return fmt.Errorf("更新订单状态失败: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}

	services.PublishAudit(model.AuditEvent{
		EventType: model.AuditOrderStatusChanged,
		ActorId:   actor.Uid,
		ActorRole: actor.Role,
		TargetId:  orderId,
		Detail:    status,
	})
	public_service.Hub.NotifyRefresh("global", "order_status_changed")

	return nil
}
