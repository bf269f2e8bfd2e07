package market_model

// Product 商品记录
// VendorId 可能为空，孤儿商品不归属任何商家
type Product struct {
	Id        string  `json:"id" bson:"_id"`
	VendorId  string  `json:"vendor_id,omitempty" bson:"vendor_id,omitempty"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Status    string  `json:"status" bson:"status"`
	ImageUrl  string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt string  `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// ProductStatusPublished 公开端只展示已上架商品
const ProductStatusPublished = "published"

func (Product) CollectionName() string {
	return "products"
}
