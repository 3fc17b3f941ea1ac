package handlers

import (
	"net/http"

	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
	"github.com/fiscalledger/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rollupHandler handles HTTP requests for derived financial figures.
type rollupHandler struct {
	rollupService portssvc.RollupSvcFacade
}

// registerRollupRoutes registers the rollup report routes, scoped under a company.
func registerRollupRoutes(rg *gin.RouterGroup, rollupService portssvc.RollupSvcFacade) {
	h := &rollupHandler{rollupService: rollupService}

	rollups := rg.Group("/rollups")
	{
		rollups.GET("/cash-balance", h.getCashBalance)
		rollups.GET("/debt", h.getDebt)
	}
}

func (h *rollupHandler) getCashBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	balance, err := h.rollupService.CashBalance(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute cash balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBalanceResponse(balance))
}

// getDebt returns the outstanding debt of one counterparty. The customerID
// query parameter selects a customer; when omitted the company's own debt
// (entries with no customer reference) is returned.
func (h *rollupHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var customerID *string
	if v := c.Query("customerID"); v != "" {
		customerID = &v
	}

	debt, err := h.rollupService.CounterpartyDebt(c.Request.Context(), companyID, customerID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute counterparty debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToCounterpartyDebtResponse(debt))
}
