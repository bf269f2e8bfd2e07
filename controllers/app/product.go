package app

import (
	"errors"

	"bazaar-go-admin/pkg/response"
	"bazaar-go-admin/services/app_service"

	"github.com/gin-gonic/gin"
)

// ProductController 买家端商品接口
type ProductController struct {
	products app_service.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{}
}

// List 商品列表，可用 vendor_id 过滤单个商家
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.products.GetProductList(c.Request.Context(), c.Query("vendor_id"))
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, products)
}

// Detail 商品详情
func (ctl *ProductController) Detail(c *gin.Context) {
	product, err := ctl.products.GetProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, app_service.ErrProductNotFound) {
			response.Error(c, response.NOT_FOUND, err.Error())
			return
		}
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, product)
}
