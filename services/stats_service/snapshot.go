package stats_service

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazaar-go-admin/model/market_model"
	"bazaar-go-admin/mongodb"
)

// Snapshot 一次请求的三份只读快照，聚合期间不再回源
type Snapshot struct {
	Orders   []market_model.Order
	Products []market_model.Product
	Vendors  []market_model.Vendor
}

// RecordStore 只读记录源
// FetchOrders 必须按创建时间倒序返回（recent_orders 直接取前5条）
type RecordStore interface {
	FetchOrders(ctx context.Context) ([]market_model.Order, error)
	FetchProducts(ctx context.Context) ([]market_model.Product, error)
	FetchVendors(ctx context.Context) ([]market_model.Vendor, error)
}

// MongoRecordStore 基于 MongoDB marketplace 库的记录源实现
type MongoRecordStore struct{}

func NewMongoRecordStore() *MongoRecordStore {
	return &MongoRecordStore{}
}

func (s *MongoRecordStore) FetchOrders(ctx context.Context) ([]market_model.Order, error) {
	coll := mongodb.GetCollection("marketplace", "orders")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("查询订单快照失败: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []market_model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("解码订单快照失败: %w", err)
	}
	return orders, nil
}

func (s *MongoRecordStore) FetchProducts(ctx context.Context) ([]market_model.Product, error) {
	coll := mongodb.GetCollection("marketplace", "products")
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询商品快照失败: %w", err)
	}
	defer cursor.Close(ctx)

	var products []market_model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("解码商品快照失败: %w", err)
	}
	return products, nil
}

func (s *MongoRecordStore) FetchVendors(ctx context.Context) ([]market_model.Vendor, error) {
	coll := mongodb.GetCollection("marketplace", "vendors")
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询商家快照失败: %w", err)
	}
	defer cursor.Close(ctx)

	var vendors []market_model.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("解码商家快照失败: %w", err)
	}
	return vendors, nil
}

// FetchSnapshot 聚合开始前的统一读屏障
// 三份快照并发拉取、全部就绪后才进入计算；任一失败则整个请求失败，不降级为部分结果
func FetchSnapshot(ctx context.Context, store RecordStore) (*Snapshot, error) {
	snap := &Snapshot{}
	var orderErr, productErr, vendorErr error

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Orders, orderErr = store.FetchOrders(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Products, productErr = store.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Vendors, vendorErr = store.FetchVendors(ctx)
	}()
	wg.Wait()

	if orderErr != nil {
		return nil, orderErr
	}
	if productErr != nil {
		return nil, productErr
	}
	if vendorErr != nil {
		return nil, vendorErr
	}
	return snap, nil
}

// BuildProductIndex 构建商品ID索引，避免逐行项目重复扫描
func BuildProductIndex(products []market_model.Product) map[string]*market_model.Product {
	index := make(map[string]*market_model.Product, len(products))
	for i := range products {
		index[products[i].Id] = &products[i]
	}
	return index
}
