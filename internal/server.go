package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fitlog/internal/charts"
	"github.com/2beens/fitlog/internal/config"
	fitlogmcp "github.com/2beens/fitlog/internal/mcp"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/profile"
	"github.com/2beens/fitlog/internal/report"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/pkg"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	ledger   *workouts.Ledger
	profiles *profile.Store
	charts   *charts.Renderer
	reports  *report.Generator

	// nil when redis is not configured
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	policy, err := workouts.ParseCategoryPolicy(cfg.UnknownCategoryPolicy)
	if err != nil {
		return nil, fmt.Errorf("category policy: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Warnln("redis not configured, rate limiting and idempotency keys are off")
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitlog-backend", rdb)
	if err != nil {
		if rdb != nil {
			err = multierr.Append(err, rdb.Close())
		}
		return nil, err
	}

	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		ledger:      workouts.NewLedger(policy),
		profiles:    profile.NewStore(cfg.WeeklyCalorieGoal),
		charts:      charts.NewRenderer(cfg.ChartCacheSizeMB, metricsManager),
		reports:     report.NewGenerator(metricsManager),

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	if rdb != nil {
		s.rateLimiter = redis_rate.NewLimiter(rdb)
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitlog-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	profileHandler := profile.NewHandler(s.profiles)
	r.Handle("/profile", s.mutation("profile", http.HandlerFunc(profileHandler.HandleSave))).Methods("POST", "OPTIONS").Name("save-profile")
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")

	workoutsHandler := workouts.NewHandler(s.ledger, s.profiles, s.metricsManager)
	r.Handle("/workouts", s.mutation("workouts", s.idempotent(http.HandlerFunc(workoutsHandler.HandleAdd)))).Methods("POST", "OPTIONS").Name("add-workout")
	r.Handle("/workouts/{category}/{id}", s.mutation("workouts", http.HandlerFunc(workoutsHandler.HandleDelete))).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/api/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts/daily/{date}", workoutsHandler.HandleDaily).Methods("GET", "OPTIONS").Name("daily-workouts")
	r.HandleFunc("/api/stats", workoutsHandler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	r.HandleFunc("/api/summary", workoutsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("summary")
	r.HandleFunc("/plans/workout", workoutsHandler.HandleWorkoutPlan).Methods("GET", "OPTIONS").Name("workout-plan")
	r.HandleFunc("/plans/diet", workoutsHandler.HandleDietPlans).Methods("GET", "OPTIONS").Name("diet-plans")

	chartsHandler := charts.NewHandler(s.ledger, s.charts)
	r.HandleFunc("/charts/bar.png", chartsHandler.HandleBar).Methods("GET", "OPTIONS").Name("bar-chart")
	r.HandleFunc("/charts/pie.png", chartsHandler.HandlePie).Methods("GET", "OPTIONS").Name("pie-chart")

	reportHandler := report.NewHandler(s.ledger, s.profiles, s.reports)
	r.HandleFunc("/report/pdf", reportHandler.HandlePDF).Methods("GET", "OPTIONS").Name("report-pdf")

	mcpServer := fitlogmcp.NewServer(s.ledger, s.profiles)
	r.Handle("/mcp", fitlogmcp.NewHTTPHandler(mcpServer)).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.RequestID())
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultMaxBodyBytes))

	return r
}

// mutation rate limits state-changing routes when redis is available.
func (s *Server) mutation(routeGroup string, next http.Handler) http.Handler {
	if s.rateLimiter == nil {
		return next
	}
	return middleware.RateLimit(s.rateLimiter, s.metricsManager, routeGroup, s.config.RateLimitPerMin)(next)
}

func (s *Server) idempotent(next http.Handler) http.Handler {
	if s.redisClient == nil {
		return next
	}
	ttl := time.Duration(s.config.IdempotencyTTLSeconds) * time.Second
	return middleware.Idempotency(s.redisClient, s.metricsManager, ttl)(next)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, keep moving ;)")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(s.promRegistry))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops both http servers in parallel, then releases
// tracing, redis and sentry resources.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	var g errgroup.Group
	for name, srv := range map[string]*http.Server{
		"http":         s.httpServer,
		"metrics http": s.metricsHttpServer,
	} {
		if srv == nil {
			continue
		}
		g.Go(func() error {
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown %s server: %w", name, err)
			}
			log.Warnf("%s server shut down", name)
			return nil
		})
	}
	err := g.Wait()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if rErr := s.redisClient.Close(); rErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", rErr))
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
