package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/pkg/response"
)

// Get godoc
// @Summary     Get cart
// @Tags        Cart
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} cartResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/cart [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GetCart(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetCart: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCartResp(out))
}

// AddItem godoc
// @Summary     Add an item to the cart
// @Description Adds quantity (default 1) of a product, merging with an existing line.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body addItemReq true "Product and quantity"
// @Success     200 {object} cartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Product not found"
// @Failure     409 {object} response.Resp "Not enough stock"
// @Router      /api/v1/cart/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.AddItem(ctx, req.toInput(userID))
	if err != nil {
		h.l.Warnf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCartResp(out))
}

// UpdateItem godoc
// @Summary     Change the quantity of a cart line
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       productId path string        true "Product ID"
// @Param       body      body updateItemReq true "New quantity"
// @Success     200 {object} cartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Product not in cart"
// @Router      /api/v1/cart/items/{productId} [PATCH]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateItem(ctx, req.toInput(userID))
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCartResp(out))
}

// RemoveItem godoc
// @Summary     Remove a cart line
// @Tags        Cart
// @Produce     json
// @Security    BearerAuth
// @Param       productId path string true "Product ID"
// @Success     200 {object} cartResp
// @Failure     404 {object} response.Resp "Product not in cart"
// @Router      /api/v1/cart/items/{productId} [DELETE]
func (h *handler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.RemoveItem(ctx, userID, c.Param("productId"))
	if err != nil {
		h.l.Warnf(ctx, "uc.RemoveItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCartResp(out))
}

// Clear godoc
// @Summary     Empty the cart
// @Tags        Cart
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} cartResp
// @Router      /api/v1/cart [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Clear(ctx, userID); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, cartResp{Items: []itemResp{}})
}
