package admin

import (
	"bazaar-go-admin/pkg/response"
	"bazaar-go-admin/services/admin_service"
	"bazaar-go-admin/services/stats_service"

	"github.com/gin-gonic/gin"
)

// CustomerController 后台客户接口
type CustomerController struct {
	customers *admin_service.CustomerService
}

func NewCustomerController() *CustomerController {
	return &CustomerController{
		customers: admin_service.NewCustomerService(stats_service.NewMongoRecordStore()),
	}
}

// List 客户列表，消费数据按操作者可见域重算
func (ctl *CustomerController) List(c *gin.Context) {
	actor, err := admin_service.ResolveActor(c)
	if err != nil {
		response.Error(c, response.AUTH_ERROR, err.Error())
		return
	}

	customers, err := ctl.customers.GetCustomerList(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, err.Error())
		return
	}
	response.Success(c, customers)
}
