package app_service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bazaar-go-admin/inout"
	"bazaar-go-admin/model/market_model"
	"bazaar-go-admin/mongodb"
	"bazaar-go-admin/pkg/monitoring"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUnknownProduct = errors.New("订单包含不存在或未上架的商品")

type OrderService struct{}

func orderColl() *mongo.Collection {
	return mongodb.GetCollection("marketplace", "orders")
}

func productColl() *mongo.Collection {
	return mongodb.GetCollection("marketplace", "products")
}

// CreateOrder 下单
// 客户端传来的 total 仅作参考，落库金额一律按行项目用 decimal 重算
func (s *OrderService) CreateOrder(ctx context.Context, userUuid string, params inout.CreateOrderReq) (*market_model.Order, error) {
	// 校验商品存在且已上架，行项目名称与单价以库内商品为准
	productIds := make([]string, 0, len(params.Items))
	for _, item := range params.Items {
		productIds = append(productIds, item.ProductId)
	}

	cursor, err := productColl().Find(ctx, bson.M{
		"_id":    bson.M{"$in": productIds},
		"status": market_model.ProductStatusPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	defer cursor.Close(ctx)

	var products []market_model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("解码商品失败: %w", err)
	}
	index := make(map[string]*market_model.Product, len(products))
	for i := range products {
		index[products[i].Id] = &products[i]
	}

	total := decimal.Zero
	items := make([]market_model.OrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		product, ok := index[item.ProductId]
		if !ok {
			return nil, ErrUnknownProduct
		}
		line := market_model.OrderItem{
			ProductId: product.Id,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
			ImageUrl:  product.ImageUrl,
		}
		items = append(items, line)
		total = total.Add(decimal.NewFromFloat(product.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	now := time.Now().UTC().Format(time.RFC3339)
	order := market_model.Order{
		Id:        uuid.New().String(),
		No:        generateOrderNo(),
		UserId:    userUuid,
		Status:    "pending",
		Total:     total.InexactFloat64(),
		Items:     items,
		Shipping:  params.Shipping,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := orderColl().InsertOne(ctx, order); err != nil {
		return nil, fmt.Errorf("创建订单失败: %w", err)
	}

	monitoring.RecordOrderCreated()
	return &order, nil
}

// GetMyOrders 当前用户的订单列表，按创建时间倒序
func (s *OrderService) GetMyOrders(ctx context.Context, userUuid string) ([]market_model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := orderColl().Find(ctx, bson.M{"user_id": userUuid}, opts)
	if err != nil {
		return nil, fmt.Errorf("查询订单失败: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []market_model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("解码订单失败: %w", err)
	}
	return orders, nil
}

// generateOrderNo 订单号：日期前缀加随机段，仅用于展示与检索
func generateOrderNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
