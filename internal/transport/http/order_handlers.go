package httpt

import (
	"context"
	"net/http"

	"tireshop/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createOrderHandler(c *gin.Context) {
	const op = "transport.createOrderHandler"

	var req createOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	order, err := h.orderSvc.CreateOrder(ctx, req.toCommand())
	if err != nil {
		h.handleServiceError(c, err, op, "Tire not found")
		return
	}

	c.JSON(http.StatusCreated, createOrderResponse{
		ID:      order.ID,
		Status:  order.Status,
		Message: "Order received. We will contact you shortly.",
	})
}

func (h *Handler) listOrdersHandler(c *gin.Context) {
	const op = "transport.listOrdersHandler"

	var status *entity.OrderStatus
	if raw, ok := c.GetQuery("status"); ok {
		candidate := entity.OrderStatus(raw)
		if !candidate.Valid() {
			c.JSON(http.StatusBadRequest,
				errorResponse{Message: "Invalid value for parameter: status"})
			return
		}
		status = &candidate
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	orders, err := h.orderSvc.ListOrders(ctx, status)
	if err != nil {
		h.handleServiceError(c, err, op, "Order not found")
		return
	}

	items := make([]adminOrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, toAdminOrderResponse(order))
	}

	c.JSON(http.StatusOK, adminOrderListResponse{Items: items})
}

func (h *Handler) updateOrderStatusHandler(c *gin.Context) {
	const op = "transport.updateOrderStatusHandler"

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	order, err := h.orderSvc.UpdateOrderStatus(ctx, id, entity.OrderStatus(req.Status))
	if err != nil {
		h.handleServiceError(c, err, op, "Order not found")
		return
	}

	c.JSON(http.StatusOK, toAdminOrderResponse(order))
}
