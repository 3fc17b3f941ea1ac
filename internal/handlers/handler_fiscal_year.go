package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
	"github.com/fiscalledger/fiscal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalYearHandler handles HTTP requests related to fiscal years.
type fiscalYearHandler struct {
	fiscalYearService portssvc.FiscalYearSvcFacade
	rollupService     portssvc.RollupSvcFacade
}

// registerFiscalYearRoutes registers routes related to fiscal years, scoped under a company.
func registerFiscalYearRoutes(rg *gin.RouterGroup, fiscalYearService portssvc.FiscalYearSvcFacade, rollupService portssvc.RollupSvcFacade) {
	h := &fiscalYearHandler{fiscalYearService: fiscalYearService, rollupService: rollupService}

	fiscalYears := rg.Group("/fiscal-years")
	{
		fiscalYears.POST("", h.createFiscalYear)
		fiscalYears.GET("", h.listFiscalYears)
		fiscalYears.GET("/:fiscalYearID", h.getFiscalYear)
		fiscalYears.POST("/:fiscalYearID/close", h.closeFiscalYear)
		fiscalYears.GET("/:fiscalYearID/summary", h.getFiscalYearSummary)
	}
}

func (h *fiscalYearHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFiscalYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create fiscal year",
		slog.String("company_id", companyID),
		slog.Int("year", req.Year))

	fy, err := h.fiscalYearService.CreateFiscalYear(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fiscal year")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(fy))
}

func (h *fiscalYearHandler) getFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	fiscalYearID := c.Param("fiscalYearID")

	fy, err := h.fiscalYearService.GetFiscalYearByID(c.Request.Context(), companyID, fiscalYearID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve fiscal year")
		return
	}

	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

func (h *fiscalYearHandler) listFiscalYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	fys, err := h.fiscalYearService.ListFiscalYears(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fiscal years")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fiscalYears": dto.ToFiscalYearResponses(fys)})
}

func (h *fiscalYearHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	fiscalYearID := c.Param("fiscalYearID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to close fiscal year",
		slog.String("company_id", companyID),
		slog.String("fiscal_year_id", fiscalYearID))

	result, err := h.fiscalYearService.CloseFiscalYear(c.Request.Context(), companyID, fiscalYearID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to close fiscal year")
		return
	}

	c.JSON(http.StatusOK, dto.ToCloseFiscalYearResponse(result))
}

func (h *fiscalYearHandler) getFiscalYearSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	fiscalYearID := c.Param("fiscalYearID")

	summary, err := h.rollupService.FiscalYearSummary(c.Request.Context(), companyID, fiscalYearID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to summarize fiscal year")
		return
	}

	c.JSON(http.StatusOK, dto.ToFiscalYearSummaryResponse(summary))
}
