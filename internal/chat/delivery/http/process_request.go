package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"chat-commerce/internal/model"
	"chat-commerce/pkg/scope"
)

// processChatReq reads the body leniently: a missing or malformed body is an
// empty message, which classifies as unknown. Each optional field is read on
// its own so a bad value drops only that field.
func (h *handler) processChatReq(c *gin.Context) (string, chatReq) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req chatReq
	if c.Request.ContentLength == 0 {
		return sc.UserID, req
	}

	raw, err := c.GetRawData()
	if err != nil {
		h.l.Debugf(ctx, "chat.processChatReq.GetRawData: %v", err)
		return sc.UserID, req
	}
	if !gjson.ValidBytes(raw) {
		h.l.Debugf(ctx, "chat.processChatReq: body is not valid JSON")
		return sc.UserID, req
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return sc.UserID, req
	}

	req.Message = scalarString(doc.Get("message"))
	req.ProductID = scalarString(doc.Get("productId"))
	req.OrderID = scalarString(doc.Get("orderId"))
	req.Quantity = quantity(doc.Get("quantity"))
	req.ShippingAddress = shippingAddress(doc.Get("shippingAddress"))

	return sc.UserID, req
}

// scalarString accepts strings and numbers. Anything else is absent.
func scalarString(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

// quantity accepts an integral number or a numeric string.
func quantity(r gjson.Result) *int {
	switch r.Type {
	case gjson.Number:
		if r.Num != float64(int(r.Num)) {
			return nil
		}
		v := int(r.Num)
		return &v
	case gjson.String:
		v, err := strconv.Atoi(strings.TrimSpace(r.Str))
		if err != nil {
			return nil
		}
		return &v
	default:
		return nil
	}
}

func shippingAddress(r gjson.Result) *model.ShippingAddress {
	if !r.IsObject() {
		return nil
	}
	return &model.ShippingAddress{
		FullName: scalarString(r.Get("fullName")),
		Phone:    scalarString(r.Get("phone")),
		Address:  scalarString(r.Get("address")),
		City:     scalarString(r.Get("city")),
		State:    scalarString(r.Get("state")),
		Pincode:  scalarString(r.Get("pincode")),
	}
}
