package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/core"
	"github.com/agenthands/cinescene/internal/core/linguistic"
	"github.com/agenthands/cinescene/internal/llm"
	"github.com/agenthands/cinescene/internal/logger"
	"github.com/agenthands/cinescene/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	Parser   *core.SceneParser
	Gatherer prometheus.Gatherer
	log      *zap.Logger
}

// New builds the full tier chain from cfg. A missing API key disables the
// remote tier; a NER model that fails to load disables NER. Neither is fatal.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	log = logger.OrNop(log)

	completer, err := llm.NewCompleter(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	if completer == nil {
		log.Info("no LLM API key configured, remote tier disabled")
	} else {
		log.Info("remote tier enabled", zap.String("provider", cfg.LLM.Provider), zap.String("model", completer.Model()))
	}

	var ner linguistic.EntityRecognizer
	if !cfg.NLP.DisableNER {
		r, err := linguistic.NewProseRecognizer(cfg.NLP.ModelDir)
		if err != nil {
			log.Warn("NER model unavailable, using speaker heuristic", zap.Error(err))
		} else {
			ner = r
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	parser := core.NewStandardParser(completer, ner, cfg,
		core.WithLogger(log),
		core.WithMetrics(metrics.New(reg)),
		core.WithBatchLimit(cfg.Concurrency.BatchScenes),
	)

	return NewServer(parser, reg, log), nil
}

func NewServer(parser *core.SceneParser, gatherer prometheus.Gatherer, log *zap.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.NewRegistry()
	}
	return &Server{
		Parser:   parser,
		Gatherer: gatherer,
		log:      logger.OrNop(log),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.POST("/scenes", s.ParseScene)
	v1.POST("/scripts", s.ParseScript)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		s.log.Info("request",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

type ParseSceneRequest struct {
	Prompt string `json:"prompt"`
}

type ParseSceneResponse struct {
	RequestID string `json:"request_id"`
	core.Result
}

func (s *Server) ParseScene(c *gin.Context) {
	var req ParseSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	res := s.Parser.ExtractWithTier(c.Request.Context(), req.Prompt)
	c.JSON(http.StatusOK, ParseSceneResponse{
		RequestID: c.GetString("request_id"),
		Result:    res,
	})
}

type ParseScriptRequest struct {
	Script string `json:"script" binding:"required"`
}

func (s *Server) ParseScript(c *gin.Context) {
	var req ParseScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	results := s.Parser.ExtractScript(c.Request.Context(), req.Script)
	c.JSON(http.StatusOK, gin.H{
		"request_id":   c.GetString("request_id"),
		"scenes":       results,
		"total_scenes": len(results),
	})
}

func (s *Server) Health(c *gin.Context) {
	status := s.Parser.Status()
	mode := "full"
	if !status.RemoteConfigured {
		mode = "local"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"mode":   mode,
		"tiers":  status,
	})
}
