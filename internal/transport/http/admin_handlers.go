package httpt

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) loginHandler(c *gin.Context) {
	const op = "transport.loginHandler"

	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	tokenString, expiresIn, err := h.adminSvc.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.handleServiceError(c, err, op, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:            tokenString,
		ExpiresInSeconds: expiresIn,
	})
}
