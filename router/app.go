package router

import (
	"bazaar-go-admin/controllers/app"
	"bazaar-go-admin/middleware"

	"github.com/gin-gonic/gin"
)

// InitApp 买家端路由，商品浏览无需登录，下单需要
func InitApp(r *gin.Engine) {
	products := app.NewProductController()
	orders := app.NewOrderController()

	public := r.Group("/api")
	{
		public.GET("/products", products.List)
		public.GET("/products/:id", products.Detail)
	}

	private := r.Group("/api", middleware.AppJWTAuth())
	{
		private.POST("/orders", orders.Create)
		private.GET("/orders/my", orders.MyOrders)
	}
}
