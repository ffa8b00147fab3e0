package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/roadnet/benefit"
	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/recorder"
	"github.com/katalvlaran/roadnet/selector"
	"github.com/katalvlaran/roadnet/traffic"
)

// Request is the body shared by every POST route.
type Request struct {
	Edges      []core.EdgeRecord `json:"edges"`
	Candidates [][2]string       `json:"candidates"`
	Config     config.Config     `json:"config"`
}

// TrafficResponse answers /traffic.
type TrafficResponse struct {
	Trips       int              `json:"trips"`
	Unreachable int              `json:"unreachable"`
	Rounds      int              `json:"rounds"`
	Stats       traffic.Stats    `json:"stats"`
	Traffic     []traffic.Record `json:"traffic"`
}

// ScoreResponse answers /score.
type ScoreResponse struct {
	Ranking  []benefit.Score     `json:"ranking"`
	Rejected []benefit.Rejection `json:"rejected,omitempty"`
	Traffic  []traffic.Record    `json:"traffic"`
}

// PlanResponse answers /plan.
type PlanResponse struct {
	Result  *selector.Result       `json:"result"`
	Reports []selector.RoundReport `json:"reports"`
}

// bind decodes the body over the server defaults and builds the network.
func (s *Server) bind(c *gin.Context) (Request, *core.Graph, bool) {
	req := Request{Config: s.cfg}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, nil, false
	}
	if err := req.Config.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, nil, false
	}
	g, err := core.FromRecords(req.Edges)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, nil, false
	}

	return req, g, true
}

func (r Request) candidates() []core.EdgeKey {
	out := make([]core.EdgeKey, 0, len(r.Candidates))
	for _, p := range r.Candidates {
		out = append(out, core.EdgeKey{U: p[0], V: p[1]})
	}

	return out
}

func (s *Server) assign(ctx context.Context, g *core.Graph, cfg config.Config, o *dijkstra.Oracle) (*traffic.Result, error) {
	return traffic.Assign(ctx, g,
		traffic.WithAgents(cfg.Agents),
		traffic.WithRounds(cfg.Rounds),
		traffic.WithSeed(cfg.Seed),
		traffic.WithOracle(o),
		traffic.WithLogger(s.log),
	)
}

func (s *Server) handleTraffic(c *gin.Context) {
	req, g, ok := s.bind(c)
	if !ok {
		return
	}
	o, err := dijkstra.NewOracle(g, dijkstra.WithCacheSize(req.Config.CacheSize))
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := s.assign(c.Request.Context(), g, req.Config, o)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TrafficResponse{
		Trips:       res.Trips,
		Unreachable: res.Unreachable,
		Rounds:      res.Rounds,
		Stats:       traffic.Summarize(res.Table),
		Traffic:     res.Table.Records(),
	})
}

func (s *Server) handleScore(c *gin.Context) {
	req, g, ok := s.bind(c)
	if !ok {
		return
	}
	mode, err := benefit.ParseDemandMode(req.Config.DemandMode)
	if err != nil {
		s.fail(c, err)
		return
	}
	o, err := dijkstra.NewOracle(g, dijkstra.WithCacheSize(req.Config.CacheSize))
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := s.assign(c.Request.Context(), g, req.Config, o)
	if err != nil {
		s.fail(c, err)
		return
	}
	ev := &benefit.Evaluator{Oracle: o, Shrinkage: req.Config.Shrinkage, Mode: mode}
	ranked, rejected, err := ev.Rank(res.Table, res.Demand, req.candidates())
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{
		Ranking:  ranked,
		Rejected: rejected,
		Traffic:  res.Table.Records(),
	})
}

func (s *Server) handlePlan(c *gin.Context) {
	req, g, ok := s.bind(c)
	if !ok {
		return
	}
	mem := recorder.NewMemory()
	sel, err := selector.New(g, req.candidates(),
		selector.WithConfig(req.Config),
		selector.WithRecorder(mem),
		selector.WithLogger(s.log))
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := sel.Run(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Result: res, Reports: mem.Rounds()})
}

// fail maps an error onto a status code and writes {"error": ...}.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.FullPath()).Error("request aborted")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, traffic.ErrInsufficientNodes),
		errors.Is(err, traffic.ErrNilGraph),
		errors.Is(err, selector.ErrNilGraph):
		return http.StatusUnprocessableEntity
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, benefit.ErrBadDemandMode),
		errors.Is(err, benefit.ErrBadShrinkage),
		errors.Is(err, dijkstra.ErrBadCacheSize),
		errors.Is(err, traffic.ErrBadParameter):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}
