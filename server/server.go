// Package server is the HTTP presentation adapter: it parses request
// parameters, runs one render cycle, and serializes the resulting view model
// as JSON or CSV. It holds no state between requests.
package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/marketdash/analysis"
	"github.com/rustyeddy/marketdash/export"
	"github.com/rustyeddy/marketdash/fetch"
	"github.com/rustyeddy/marketdash/journal"
	"github.com/rustyeddy/marketdash/quotes"
	"github.com/rustyeddy/marketdash/view"
)

type Server struct {
	engine *gin.Engine
	source fetch.Source
	quotes quotes.Backend
	jnl    journal.Journal
}

// New wires the routes. A nil journal disables render journaling; a nil
// quote backend serves placeholder overview rows.
func New(source fetch.Source, qb quotes.Backend, jnl journal.Journal) *Server {
	s := &Server{
		engine: gin.Default(),
		source: source,
		quotes: qb,
		jnl:    jnl,
	}

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := s.engine.Group("/api/v1")
	api.GET("/dashboard", s.handleDashboard)
	api.GET("/dashboard/frame.csv", s.handleFrameCSV)
	api.GET("/dashboard/matrix.csv", s.handleMatrixCSV)
	api.GET("/quotes/:category", s.handleQuotes)

	return s
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("[INFO] dashboard listening on %s", addr)
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// parseRequest maps query parameters onto a render request. Unset parameters
// fall back to the request defaults.
func parseRequest(c *gin.Context) (view.Request, error) {
	req := view.Request{
		Category: quotes.Category(c.DefaultQuery("category", string(quotes.Stocks))),
		Interval: fetch.Interval(c.DefaultQuery("interval", string(fetch.IntervalDaily))),
	}
	if t := c.Query("tickers"); t != "" {
		req.Tickers = view.ParseTickers(t)
	}
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"start", &req.Start},
		{"end", &req.End},
	} {
		if v := c.Query(p.name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return view.Request{}, fmt.Errorf("%s: want YYYY-MM-DD, got %q", p.name, v)
			}
			*p.dst = t
		}
	}
	req.ShowSMA = boolQuery(c, "ma")
	req.ShowRSI = boolQuery(c, "rsi")
	req.ShowBollinger = boolQuery(c, "bollinger")
	req.CompareBenchmark = boolQuery(c, "benchmark")
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"ma_window", &req.SMAWindow},
		{"rsi_period", &req.RSIPeriod},
		{"bollinger_window", &req.BollingerWindow},
	} {
		if v := c.Query(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return view.Request{}, fmt.Errorf("%s: want a positive integer, got %q", p.name, v)
			}
			*p.dst = n
		}
	}
	return req, nil
}

func boolQuery(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return v
}

func (s *Server) render(c *gin.Context) (*view.ViewModel, bool) {
	req, err := parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	vm, err := view.Render(c.Request.Context(), req, s.source, s.quotes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	if s.jnl != nil {
		if err := s.jnl.RecordRender(journal.FromView(vm)); err != nil {
			log.Printf("[WARN] journal render %s: %v", vm.ID, err)
		}
	}
	return vm, true
}

func (s *Server) handleDashboard(c *gin.Context) {
	vm, ok := s.render(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(vm))
}

func (s *Server) handleFrameCSV(c *gin.Context) {
	vm, ok := s.render(c)
	if !ok {
		return
	}
	if vm.Frame == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": analysis.ErrNoUsableData.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="frame.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WriteFrameCSV(c.Writer, vm.Frame); err != nil {
		log.Printf("[WARN] frame csv: %v", err)
	}
}

func (s *Server) handleMatrixCSV(c *gin.Context) {
	vm, ok := s.render(c)
	if !ok {
		return
	}
	if vm.Matrix == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": analysis.ErrInsufficientData.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="matrix.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.WriteMatrixCSV(c.Writer, vm.Matrix); err != nil {
		log.Printf("[WARN] matrix csv: %v", err)
	}
}

func (s *Server) handleQuotes(c *gin.Context) {
	cat := quotes.Category(c.Param("category"))
	if !cat.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown category %q", cat)})
		return
	}
	table, warn := quotes.Fetch(s.quotes, cat)
	resp := gin.H{"table": table}
	if warn != "" {
		resp["warning"] = warn
	}
	c.JSON(http.StatusOK, resp)
}
