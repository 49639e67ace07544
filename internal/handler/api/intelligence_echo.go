// Package api exposes the intelligence facade over HTTP.
package api

import (
	"net/http"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/usecase"
	xhttp "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/http"
	xlogger "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"

	"github.com/labstack/echo/v4"
)

// IntelligenceHandler serves the market-intelligence query surface.
type IntelligenceHandler struct {
	logger *xlogger.Logger
	svc    *usecase.Intelligence
}

// NewIntelligenceHandler creates the HTTP handler.
func NewIntelligenceHandler(logger *xlogger.Logger, svc *usecase.Intelligence) *IntelligenceHandler {
	return &IntelligenceHandler{logger: logger, svc: svc}
}

// RegisterRoutes mounts the query endpoints.
func (h *IntelligenceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/risk", h.Risk)
	g.GET("/tariff", h.Tariff)
	g.GET("/market", h.Market)
	g.GET("/market/all", h.MarketAll)
	g.GET("/indicators", h.Indicators)

	e.GET("/healthz", h.Health)
}

// Risk handles GET /api/risk?country=...&product=...
func (h *IntelligenceHandler) Risk(c echo.Context) error {
	req := &models.RiskRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.svc.GetRisk(req.Country, req.Product))
}

// Tariff handles GET /api/tariff?product=...&from=...&to=...
func (h *IntelligenceHandler) Tariff(c echo.Context) error {
	req := &models.TariffRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.svc.GetTariff(req.Product, req.FromCountry, req.ToCountry))
}

// Market handles GET /api/market?country=...&product=...
func (h *IntelligenceHandler) Market(c echo.Context) error {
	req := &models.MarketRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.svc.GetMarketSnapshot(req.Country, req.Product))
}

// MarketAll handles GET /api/market/all.
func (h *IntelligenceHandler) MarketAll(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.svc.GetAllMarketData())
}

// Indicators handles GET /api/indicators.
func (h *IntelligenceHandler) Indicators(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.svc.GetEconomicIndicators())
}

// Health handles GET /healthz.
func (h *IntelligenceHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
