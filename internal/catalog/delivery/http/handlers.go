package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/pkg/response"
)

// List godoc
// @Summary     List products
// @Description Returns every active product, newest first.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.uc.ListAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(products))
}

// Search godoc
// @Summary     Search products
// @Description Filters active products by text, category and effective price range.
// @Tags        Catalog
// @Produce     json
// @Param       q        query string false "Text matched against name and description"
// @Param       category query string false "Category slug or name"
// @Param       minPrice query number false "Minimum effective price"
// @Param       maxPrice query number false "Maximum effective price"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	products, err := h.uc.SearchWithFilters(ctx, req.toFilters())
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchWithFilters: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(products))
}

// Detail godoc
// @Summary     Get product detail
// @Tags        Catalog
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(p))
}
