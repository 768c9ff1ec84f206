package api

import (
	"errors"
	"net/http"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StocksEchoHandler exposes the market-data and insights endpoints.
type StocksEchoHandler struct {
	logger   *xlogger.Logger
	stocks   *usecase.StockService
	gateway  *usecase.MarketDataGateway
	insights *usecase.InsightService
}

func NewStocksEchoHandler(logger *xlogger.Logger, stocks *usecase.StockService, gateway *usecase.MarketDataGateway, insights *usecase.InsightService) *StocksEchoHandler {
	return &StocksEchoHandler{logger: logger, stocks: stocks, gateway: gateway, insights: insights}
}

func (h *StocksEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.GET("/stocks", h.List)
	g.GET("/stocks/search", h.Search)
	g.GET("/stocks/:symbol", h.Detail)
	g.GET("/stocks/:symbol/insights", h.Insights)
	g.GET("/stocks/:symbol/history", h.History)
}

func (h *StocksEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StocksEchoHandler) List(c echo.Context) error {
	summaries, err := h.stocks.List(c.Request().Context())
	if err != nil {
		h.logger.Error("stock list failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, summaries)
}

func (h *StocksEchoHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	results, err := h.stocks.Search(c.Request().Context(), req.Name, req.Limit)
	if err != nil {
		h.logger.Error("search failed", xlogger.String("query", req.Name), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("Search is unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, results)
}

func (h *StocksEchoHandler) Detail(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	detail, err := h.gateway.Detail(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("stock detail failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, detail)
}

func (h *StocksEchoHandler) Insights(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.insights.Insights(c.Request().Context(), req.Symbol)
	if err != nil {
		if errors.Is(err, drepo.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("Stock data not found"))
		}
		h.logger.Error("insights failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("Insights are unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *StocksEchoHandler) History(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	series, err := h.gateway.History(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("history failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("History is unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, &models.StockHistory{Symbol: req.Symbol, History: series})
}
