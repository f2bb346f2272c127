package httpserver

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

//go:embed static/index.html
var indexHTML []byte

// Collector produces a fresh capability report.
type Collector interface {
	Collect(ctx context.Context) domain.CapabilityReport
}

type API struct {
	reports Collector
	logger  *slog.Logger
}

func NewAPI(reports Collector, logger *slog.Logger) *API {
	return &API{reports: reports, logger: logger}
}

func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/", a.index)
	router.GET("/health", a.health)
	router.GET("/api/capabilities", a.capabilities)
}

func (a *API) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// health reports liveness only; it checks no dependencies.
func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// capabilities always answers 200: missing hardware or tools show up as
// unavailable sections inside the report, never as an HTTP error.
func (a *API) capabilities(c *gin.Context) {
	c.JSON(http.StatusOK, a.reports.Collect(c.Request.Context()))
}
