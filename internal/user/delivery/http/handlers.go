package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/pkg/response"
)

// Signup godoc
// @Summary     Create an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Name, email and password"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newAuthResp(out))
}

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Email and password"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid email or password"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAuthResp(out))
}

// Refresh godoc
// @Summary     Exchange a refresh token for a new token pair
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200 {object} tokensResp
// @Failure     401 {object} response.Resp "Invalid refresh token"
// @Router      /api/v1/auth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tokens, err := h.uc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.l.Warnf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, tokensResp{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

// Me godoc
// @Summary     Current user profile
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	u, err := h.uc.Me(ctx, userID)
	if err != nil {
		h.l.Warnf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(u))
}

// UpdateProfile godoc
// @Summary     Update name, phone or saved addresses
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "Fields to change; addresses replaces the saved list"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/profile [PATCH]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	u, err := h.uc.UpdateProfile(ctx, userID, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(u))
}
