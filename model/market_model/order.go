package market_model

// OrderItem 订单行项目，下单时从商品快照反范式化而来
// price 是下单时刻的快照价格，不随商品价格变动
type OrderItem struct {
	ProductId string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Quantity  int     `json:"quantity" bson:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" bson:"price" binding:"gte=0"`
	ImageUrl  string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// ShippingAddress 收货信息
type ShippingAddress struct {
	Name   string `json:"name" bson:"name"`
	Phone  string `json:"phone" bson:"phone"`
	Street string `json:"street" bson:"street"`
	City   string `json:"city" bson:"city"`
	Region string `json:"region" bson:"region"`
}

// Order 订单记录
// Total 为客户端下单时声明的金额，统计引擎不信任该字段，
// 所有派生金额一律按 Σ(quantity × price) 重新计算
type Order struct {
	Id        string          `json:"id" bson:"_id"`
	No        string          `json:"no,omitempty" bson:"no,omitempty"`
	UserId    string          `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Status    string          `json:"status" bson:"status"`
	Total     float64         `json:"total" bson:"total"`
	Items     []OrderItem     `json:"items" bson:"items"`
	Shipping  ShippingAddress `json:"shipping" bson:"shipping"`
	CreatedAt string          `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

func (Order) CollectionName() string {
	return "orders"
}
