package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "chat-commerce/pkg/errors"
)

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
