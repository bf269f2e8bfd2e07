package market_model

// Vendor 商家记录
type Vendor struct {
	Id          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Slug        string `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	LogoUrl     string `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	IsActive    bool   `json:"is_active" bson:"is_active"`
	CreatedAt   string `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

func (Vendor) CollectionName() string {
	return "vendors"
}
