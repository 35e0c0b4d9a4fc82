package cartrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/usecase/cartuc"
)

type itemReq struct {
	Days      int    `json:"days"`
	StartDate string `json:"startDate" binding:"required"`
}

func (rs *resource) DserItemReq(c *gin.Context) *itemReq {
	req := &itemReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	req.Days = cartuc.ClampDays(req.Days, rs.cart.MaxDays())
	return req
}

type checkoutReq struct {
	PaymentMethod model.PaymentMethod `json:"paymentMethod" binding:"required,oneof=card cash"`
}

func (rs *resource) DserCheckoutReq(c *gin.Context) *checkoutReq {
	req := &checkoutReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
