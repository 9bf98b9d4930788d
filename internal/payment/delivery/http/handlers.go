package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "chat-commerce/pkg/errors"
	"chat-commerce/pkg/response"
)

// Checkout godoc
// @Summary     Start checkout for an order
// @Description Creates a gateway order and returns what the browser checkout needs.
// @Tags        Payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body checkoutReq true "Order to pay"
// @Success     200 {object} checkoutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Order not found"
// @Failure     409 {object} response.Resp "Order is already paid"
// @Router      /api/v1/payments/checkout [POST]
func (h *handler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processCheckoutReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.CreateCheckoutSession(ctx, req.OrderID, userID)
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateCheckoutSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCheckoutResp(s))
}

// Verify godoc
// @Summary     Verify a completed payment
// @Tags        Payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body verifyReq true "Checkout callback fields"
// @Success     200 {object} verifyResp
// @Failure     400 {object} response.Resp "Missing fields or invalid signature"
// @Failure     404 {object} response.Resp "Order not found"
// @Router      /api/v1/payments/verify [POST]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processVerifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.VerifyPayment(ctx, userID, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.VerifyPayment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newVerifyResp(out))
}

// Webhook godoc
// @Summary     Gateway webhook
// @Description Applies payment.captured and order.paid events. Signed with the webhook secret.
// @Tags        Payments
// @Accept      json
// @Produce     json
// @Param       X-Razorpay-Signature header string true "HMAC-SHA256 of the raw body"
// @Success     200 {object} webhookResp
// @Failure     400 {object} response.Resp "Invalid signature"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/payments/webhook [POST]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.webhookLimiter.Allow(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "payment.Webhook: %v", err)
		response.Error(c, pkgErrors.ErrTooManyRequests, nil)
		return
	}

	payload, signature, err := h.processWebhookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.HandleWebhook(ctx, payload, signature)
	if err != nil {
		h.l.Warnf(ctx, "uc.HandleWebhook: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, webhookResp{
		Event:   res.Event,
		OrderID: res.OrderID,
		Updated: res.Updated,
		Ignored: res.Ignored,
	})
}
