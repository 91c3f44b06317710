package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"luxdash/internal/engine"
	"luxdash/internal/export"
	"luxdash/internal/models"
)

type Handler struct {
	session atomic.Pointer[engine.Session]
	logger  *slog.Logger
}

// NewHandler accepts a nil session; every data route answers 503 until
// SetSession is called.
func NewHandler(s *engine.Session, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{logger: logger}
	if s != nil {
		h.session.Store(s)
	}
	return h
}

// SetSession publishes a warmed-up session to the routes.
func (h *Handler) SetSession(s *engine.Session) {
	h.session.Store(s)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/dataset", h.GetDataset)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/kpis", h.GetKPIs)
	api.GET("/insights", h.GetInsights)
	api.GET("/charts", h.GetCharts)
	api.GET("/quarters", h.GetQuarters)
	api.GET("/export.xlsx", h.GetExport)
}

// --- HELPERS ---

func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *Handler) ready() (*engine.Session, error) {
	s := h.session.Load()
	if s == nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is still being generated")
	}
	return s, nil
}

// namesParam distinguishes an absent parameter (everything) from a present
// but empty one (nothing).
func namesParam(c echo.Context, key string, all []string) []string {
	values, ok := c.QueryParams()[key]
	if !ok {
		return all
	}
	return engine.SplitNames(strings.Join(values, ","))
}

// SelectionFromQuery reads models, regions, start and end. Missing start and
// end select the whole span; a single bound is a malformed range.
func SelectionFromQuery(c echo.Context, s *engine.Session) (models.Selection, error) {
	d := s.Dataset()
	sel := models.Selection{
		Models:  namesParam(c, "models", d.ModelNames()),
		Regions: namesParam(c, "regions", d.RegionNames()),
	}

	var bounds []string
	for _, key := range []string{"start", "end"} {
		if v := c.QueryParam(key); v != "" {
			bounds = append(bounds, v)
		}
	}
	if len(bounds) == 0 {
		return sel, nil
	}
	r, err := engine.ParseDateRange(bounds...)
	if err != nil {
		return sel, err
	}
	sel.Range = &r
	return sel, nil
}

func (h *Handler) evaluate(c echo.Context) (*models.DashboardData, error) {
	s, err := h.ready()
	if err != nil {
		return nil, err
	}
	sel, err := SelectionFromQuery(c, s)
	if err != nil {
		return nil, toHTTPError(err)
	}
	data, err := s.Evaluate(sel)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return data, nil
}

func toHTTPError(err error) error {
	if errors.Is(err, engine.ErrInvalidRange) {
		return echo.NewHTTPError(http.StatusBadRequest, "Por favor, selecione um intervalo de datas válido.").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}

// --- HANDLERS ---

func (h *Handler) GetHealth(c echo.Context) error {
	if h.session.Load() == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDataset(c echo.Context) error {
	s, err := h.ready()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.Dataset().View())
}

func (h *Handler) GetDashboard(c echo.Context) error {
	data, err := h.evaluate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (h *Handler) GetKPIs(c echo.Context) error {
	data, err := h.evaluate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data.KPIs)
}

func (h *Handler) GetInsights(c echo.Context) error {
	data, err := h.evaluate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data.Insights)
}

func (h *Handler) GetCharts(c echo.Context) error {
	data, err := h.evaluate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data.Charts)
}

// filtered quarterly series, paginated
func (h *Handler) GetQuarters(c echo.Context) error {
	data, err := h.evaluate(c)
	if err != nil {
		return err
	}
	quarters := data.Quarters
	total := len(quarters)
	limit, offset := getPaginationParams(c, total)

	if offset >= total {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"data":   []models.QuarterlyRecord{},
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   quarters[offset:end],
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) GetExport(c echo.Context) error {
	data, err := h.evaluate(c)
	if err != nil {
		return err
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, export.ContentType)
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", export.FileName(data)))
	res.WriteHeader(http.StatusOK)
	if err := export.Write(res, data); err != nil {
		// headers are gone already, so only log
		h.logger.Error("export failed", "session", data.SessionID, "err", err)
	}
	return nil
}
