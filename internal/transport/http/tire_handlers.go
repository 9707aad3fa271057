package httpt

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tireshop/internal/entity"

	"github.com/gin-gonic/gin"
)

const _defaultContextTimeout = 2 * time.Second

// listTiresHandler serves the public catalog. active defaults to true;
// asking for active=false returns the whole catalog, matching the admin
// console's expectations.
func (h *Handler) listTiresHandler(c *gin.Context) {
	const op = "transport.listTiresHandler"

	onlyActive := true
	if raw, ok := c.GetQuery("active"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				errorResponse{Message: "Invalid value for parameter: active"})
			return
		}
		onlyActive = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	tires, err := h.tireSvc.ListTires(ctx, onlyActive)
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	items := make([]tireResponse, 0, len(tires))
	for _, tire := range tires {
		items = append(items, toTireResponse(tire))
	}

	c.JSON(http.StatusOK, tireListResponse{Items: items})
}

func (h *Handler) getTireHandler(c *gin.Context) {
	const op = "transport.getTireHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	tire, err := h.tireSvc.GetTireByID(ctx, id)
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	c.JSON(http.StatusOK, toTireResponse(tire))
}

func (h *Handler) searchTiresHandler(c *gin.Context) {
	const op = "transport.searchTiresHandler"

	filter := &entity.TireFilter{}
	if brand, ok := c.GetQuery("brand"); ok {
		filter.Brand = &brand
	}
	if series, ok := c.GetQuery("series"); ok {
		filter.Series = &series
	}
	if size, ok := c.GetQuery("size"); ok {
		filter.Size = &size
	}
	if raw, ok := c.GetQuery("active"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				errorResponse{Message: "Invalid value for parameter: active"})
			return
		}
		filter.IsActive = &parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	tires, err := h.tireSvc.SearchTires(ctx, filter)
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	items := make([]adminTireResponse, 0, len(tires))
	for _, tire := range tires {
		items = append(items, toAdminTireResponse(tire))
	}

	c.JSON(http.StatusOK, adminTireListResponse{Items: items})
}

func (h *Handler) createTireHandler(c *gin.Context) {
	const op = "transport.createTireHandler"

	var req tireRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	created, err := h.tireSvc.CreateTire(ctx, req.toEntity(0))
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	c.JSON(http.StatusCreated, toAdminTireResponse(created))
}

func (h *Handler) updateTireHandler(c *gin.Context) {
	const op = "transport.updateTireHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	var req tireRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	updated, err := h.tireSvc.UpdateTire(ctx, req.toEntity(id))
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	c.JSON(http.StatusOK, toAdminTireResponse(updated))
}

func (h *Handler) setTireActiveHandler(c *gin.Context) {
	const op = "transport.setTireActiveHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	var req updateTireStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	updated, err := h.tireSvc.SetTireActive(ctx, id, *req.IsActive)
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	c.JSON(http.StatusOK, toAdminTireResponse(updated))
}

func (h *Handler) parseID(c *gin.Context, op string) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		h.handleInvalidID(c, op, raw)
		return 0, false
	}
	return id, true
}
