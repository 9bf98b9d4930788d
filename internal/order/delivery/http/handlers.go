package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/pkg/response"
)

// Create godoc
// @Summary     Place an order
// @Description Turns the cart into an order, decrements stock and empties the cart.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Shipping address"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Cart is empty or address incomplete"
// @Failure     409 {object} response.Resp "Insufficient stock"
// @Router      /api/v1/orders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.CreateOrder(ctx, userID, *req.ShippingAddress)
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateOrder: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, detailResp{Order: newOrderResp(o)})
}

// List godoc
// @Summary     List my orders
// @Tags        Orders
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/orders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	orders, err := h.uc.GetOrders(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetOrders: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(orders))
}

// Detail godoc
// @Summary     Get one of my orders
// @Tags        Orders
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Order ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Order not found"
// @Router      /api/v1/orders/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	o, err := h.uc.GetOrderByID(ctx, userID, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.GetOrderByID: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Order: newOrderResp(o)})
}
