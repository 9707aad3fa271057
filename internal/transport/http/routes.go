package httpt

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) setupRoutes() {
	h.router.GET("/health", h.healthHandler)

	api := h.router.Group("/api")
	{
		tires := api.Group("/tires")
		{
			tires.GET("", h.listTiresHandler)
			tires.GET("/:id", h.getTireHandler)
		}

		api.POST("/orders", h.createOrderHandler)

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.loginHandler)

			// everything below requires a verified ADMIN bearer token;
			// the public routes above never touch the gate
			protected := admin.Group("", h.requireRole("ADMIN"))
			{
				protected.GET("/orders", h.listOrdersHandler)
				protected.PATCH("/orders/:id/status", h.updateOrderStatusHandler)
				protected.GET("/tires", h.searchTiresHandler)
				protected.POST("/tires", h.createTireHandler)
				protected.PUT("/tires/:id", h.updateTireHandler)
				protected.PATCH("/tires/:id/active", h.setTireActiveHandler)
			}
		}
	}
}

func (h *Handler) healthHandler(c *gin.Context) {
	body := gin.H{"timestamp": time.Now().UTC().Format(time.RFC3339)}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		body["status"] = "DOWN"
		body["db"] = "DOWN"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "UP"
	body["db"] = "UP"
	c.JSON(http.StatusOK, body)
}
