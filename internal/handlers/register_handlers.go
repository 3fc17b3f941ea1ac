package handlers

import (
	"net/http"

	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/middleware"
	"github.com/fiscalledger/fiscal_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyRoutes(v1, services.Currency)
	registerCompanyRoutes(v1, services.Company)

	// Everything under a company is scoped by its ID
	company := v1.Group("/companies/:companyID")
	registerAccountRoutes(company, services.Account)
	registerFiscalYearRoutes(company, services.FiscalYear, services.Rollup)
	registerLedgerRoutes(company, services.Ledger)
	registerRollupRoutes(company, services.Rollup)
	registerCustomerRoutes(company, services.Customer)
	registerProjectRoutes(company, services.Project, services.Rollup)
}
