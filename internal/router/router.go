// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/biztime/internal/handler"
	"github.com/deppfellow/biztime/internal/middleware"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: request id and tracing must exist before the context
	// logger is built, and the logger before anything that logs. The
	// limiter sits inside the request logger so 429s are logged too.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	// Reads are public. Writes go through Clerk when auth is enabled.
	var protected []echo.MiddlewareFunc
	if middlewares.Auth.Enabled() {
		protected = append(protected, middlewares.Auth.RequireAuth)
	}

	registerCompanyRoutes(router.Group("/companies"), h.Company, protected)
	registerInvoiceRoutes(router.Group("/invoices"), h.Invoice, protected)

	return router
}

func registerCompanyRoutes(g *echo.Group, h *handler.CompanyHandler, protected []echo.MiddlewareFunc) {
	g.GET("", handler.Handle(h.ListCompanies, http.StatusOK))
	g.GET("/:code", handler.Handle(h.GetCompany, http.StatusOK))
	g.POST("", handler.Handle(h.CreateCompany, http.StatusCreated), protected...)
	g.PUT("/:code", handler.Handle(h.UpdateCompany, http.StatusOK), protected...)
	g.DELETE("/:code", handler.Handle(h.DeleteCompany, http.StatusOK), protected...)
}

func registerInvoiceRoutes(g *echo.Group, h *handler.InvoiceHandler, protected []echo.MiddlewareFunc) {
	g.GET("", handler.Handle(h.ListInvoices, http.StatusOK))
	g.GET("/:id", handler.Handle(h.GetInvoice, http.StatusOK))
	g.GET("/companies/:code", handler.Handle(h.ListCompanyInvoices, http.StatusOK))
	g.POST("", handler.Handle(h.CreateInvoice, http.StatusCreated), protected...)
	g.PUT("/:id", handler.Handle(h.UpdateInvoice, http.StatusOK), protected...)
	g.DELETE("/:id", handler.Handle(h.DeleteInvoice, http.StatusOK), protected...)
}
