package app_service

import (
	"context"
	"errors"
	"fmt"

	"bazaar-go-admin/model/market_model"
	"bazaar-go-admin/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProductNotFound = errors.New("商品不存在")

type ProductService struct{}

// GetProductList 商品列表，只返回已上架商品，可按商家过滤
func (s *ProductService) GetProductList(ctx context.Context, vendorId string) ([]market_model.Product, error) {
	filter := bson.M{"status": market_model.ProductStatusPublished}
	if vendorId != "" {
		filter["vendor_id"] = vendorId
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := mongodb.GetCollection("marketplace", "products").Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("查询商品列表失败: %w", err)
	}
	defer cursor.Close(ctx)

	products := []market_model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("解码商品列表失败: %w", err)
	}
	return products, nil
}

// GetProductDetail 商品详情
func (s *ProductService) GetProductDetail(ctx context.Context, id string) (*market_model.Product, error) {
	var product market_model.Product
	err := mongodb.GetCollection("marketplace", "products").
		FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	return &product, nil
}
