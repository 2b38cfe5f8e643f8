package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/dto"
	"github.com/changifyhq/changify-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultOrderListLimit = 50

// orderHandler handles HTTP requests related to orders and their lifecycle.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listMyOrders)
		orders.GET("/queue", h.listQueue)
		orders.GET("/completed", h.listCompleted)
		orders.GET("/:id", h.getOrder)
		orders.POST("/:id/accept", h.acceptOrder)
		orders.POST("/:id/release", h.releaseOrder)
		orders.POST("/:id/payment-details", h.providePaymentDetails)
		orders.POST("/:id/confirm-payment", h.confirmPayment)
		orders.POST("/:id/paid", h.markPaid)
		orders.POST("/:id/complete", h.completeOrder)
		orders.POST("/:id/reject", h.rejectOrder)
		orders.POST("/:id/cancel", h.cancelOrder)
	}
}

// transition is the shared shape of the body-less lifecycle endpoints.
func (h *orderHandler) transition(c *gin.Context, fallback string, apply func(ctx *gin.Context, orderID, actorID string) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := apply(c, c.Param("id"), actorID); err != nil {
		respondServiceError(c, logger, err, fallback)
		return
	}
}

func (h *orderHandler) acceptOrder(c *gin.Context) {
	h.transition(c, "Failed to accept order", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.Accept(ctx.Request.Context(), orderID, actorID)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) releaseOrder(c *gin.Context) {
	h.transition(c, "Failed to release order", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.Release(ctx.Request.Context(), orderID, actorID)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) providePaymentDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProvidePaymentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for providePaymentDetails", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.transition(c, "Failed to provide payment details", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.ProvidePaymentDetails(ctx.Request.Context(), orderID, actorID, req.Details)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) confirmPayment(c *gin.Context) {
	h.transition(c, "Failed to confirm payment", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.ConfirmPayment(ctx.Request.Context(), orderID, actorID)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) markPaid(c *gin.Context) {
	h.transition(c, "Failed to mark order paid", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.MarkPaid(ctx.Request.Context(), orderID, actorID)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) completeOrder(c *gin.Context) {
	h.transition(c, "Failed to complete order", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.Complete(ctx.Request.Context(), orderID, actorID)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) rejectOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RejectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for rejectOrder", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.transition(c, "Failed to reject order", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.Reject(ctx.Request.Context(), orderID, actorID, req.Reason)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) cancelOrder(c *gin.Context) {
	h.transition(c, "Failed to cancel order", func(ctx *gin.Context, orderID, actorID string) error {
		order, err := h.orderService.Cancel(ctx.Request.Context(), orderID, actorID)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
		return nil
	})
}

func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) listMyOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.ListMyOrders(c.Request.Context(), actorID, listLimit(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

func (h *orderHandler) listQueue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.ListQueue(c.Request.Context(), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list order queue")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

func (h *orderHandler) listCompleted(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.orderService.ListCompleted(c.Request.Context(), actorID, listLimit(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list completed orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

func listLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", ""))
	if err != nil || limit <= 0 || limit > 200 {
		return defaultOrderListLimit
	}
	return limit
}
