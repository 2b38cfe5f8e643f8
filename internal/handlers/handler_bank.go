package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/dto"
	"github.com/changifyhq/changify-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to the bank catalog.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerBankRoutes registers routes related to banks.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("/:id", h.getBank)
		banks.PUT("/:id/enabled", h.setBankEnabled)
	}

	// Banks are listed per owning currency.
	rg.GET("/currencies/:code/banks", h.listBanksForCurrency)
}

func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBank", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.bankService.CreateBank(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankResponse(created))
}

func (h *bankHandler) getBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bank, err := h.bankService.GetBankByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get bank")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

func (h *bankHandler) listBanksForCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	enabledOnly, _ := strconv.ParseBool(c.DefaultQuery("enabledOnly", "false"))
	banks, err := h.bankService.ListBanksForCurrency(c.Request.Context(), c.Param("code"), enabledOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list banks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBankResponse(banks))
}

func (h *bankHandler) setBankEnabled(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ToggleEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setBankEnabled", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.bankService.SetBankEnabled(c.Request.Context(), c.Param("id"), *req.Enabled, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to update bank")
		return
	}

	c.Status(http.StatusNoContent)
}
