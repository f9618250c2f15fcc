package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flowmetriclabs/aproi/internal/config"
	leaddomain "github.com/flowmetriclabs/aproi/internal/lead/domain"
	reportdomain "github.com/flowmetriclabs/aproi/internal/report/domain"
	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	log    *zap.Logger
	cfg    config.Config

	scenarioSvc   scenariodomain.Service
	reportSvc     reportdomain.Service
	leadExportSvc leaddomain.ExportService
}

type Params struct {
	fx.In

	Engine        *gin.Engine
	Log           *zap.Logger
	Config        config.Config
	ScenarioSvc   scenariodomain.Service
	ReportSvc     reportdomain.Service
	LeadExportSvc leaddomain.ExportService
}

func NewEngine(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestIDMiddleware())
	engine.Use(requestLogger(log.Named("http")))
	engine.Use(metricsMiddleware())
	engine.Use(gin.Recovery())
	return engine
}

func NewServer(p Params) *Server {
	return &Server{
		engine:        p.Engine,
		log:           p.Log.Named("server"),
		cfg:           p.Config,
		scenarioSvc:   p.ScenarioSvc,
		reportSvc:     p.ReportSvc,
		leadExportSvc: p.LeadExportSvc,
	}
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) RegisterAPIRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api/v1")
	api.POST("/simulations", s.Simulate)
	api.POST("/scenarios", s.CreateScenario)
	api.GET("/scenarios", s.ListScenarios)
	api.GET("/scenarios/:id", s.GetScenarioByID)
	api.DELETE("/scenarios/:id", s.DeleteScenario)
	api.POST("/reports/generate", s.GenerateReport)
	api.GET("/reports/requests/export", s.ExportReportRequests)
}

// RunHTTP starts the listener under the fx lifecycle so shutdown drains
// in-flight requests.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSec) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				s.log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-Id", requestID)
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Error("request failed", fields...)
			return
		}
		log.Info("request", fields...)
	}
}
