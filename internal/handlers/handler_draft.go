package handlers

import (
	"net/http"

	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/dto"
	"github.com/changifyhq/changify-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// draftHandler exposes the guided request-creation dialog over HTTP. Every
// endpoint acts on the authenticated actor's single live session.
type draftHandler struct {
	draftService portssvc.DraftSvcFacade
}

func newDraftHandler(ds portssvc.DraftSvcFacade) *draftHandler {
	return &draftHandler{draftService: ds}
}

// registerDraftRoutes registers routes related to draft sessions.
func registerDraftRoutes(rg *gin.RouterGroup, draftService portssvc.DraftSvcFacade) {
	h := newDraftHandler(draftService)

	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.startDraft)
		drafts.GET("", h.getDraft)
		drafts.DELETE("", h.cancelDraft)
		drafts.POST("/currency", h.selectCurrency)
		drafts.POST("/amount", h.enterAmount)
		drafts.POST("/bank", h.selectBank)
		drafts.POST("/payment-details", h.enterPaymentDetails)
		drafts.POST("/back", h.back)
		drafts.POST("/confirm", h.confirm)
	}
}

func (h *draftHandler) startDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.StartDraft(c.Request.Context(), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to start draft")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDraftSessionResponse(session))
}

func (h *draftHandler) getDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.GetDraft(c.Request.Context(), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get draft")
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(session))
}

func (h *draftHandler) cancelDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.draftService.Cancel(c.Request.Context(), actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel draft")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *draftHandler) selectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for selectCurrency", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.SelectCurrency(c.Request.Context(), actorID, req.CurrencyCode)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to select currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(session))
}

func (h *draftHandler) enterAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EnterAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for enterAmount", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.EnterAmount(c.Request.Context(), actorID, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to enter amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(session))
}

func (h *draftHandler) selectBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for selectBank", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.SelectBank(c.Request.Context(), actorID, req.BankID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to select bank")
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(session))
}

func (h *draftHandler) enterPaymentDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EnterPaymentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for enterPaymentDetails", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.EnterPaymentDetails(c.Request.Context(), actorID, req.Details)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to enter payment details")
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(session))
}

// back steps the dialog backwards. From the target-currency step it returns
// the reopened session; from anywhere else the session is cancelled and 204
// is returned.
func (h *draftHandler) back(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.draftService.Back(c.Request.Context(), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to step back")
		return
	}
	if session == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftSessionResponse(session))
}

func (h *draftHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.draftService.Confirm(c.Request.Context(), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to confirm draft")
		return
	}

	logger.Info("Order created from draft", "order_id", order.OrderID)
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}
