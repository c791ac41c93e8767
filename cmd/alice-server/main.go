// Command alice-server serves the maze solver over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/alice-maze/api"
	api_i "github.com/beka-birhanu/alice-maze/api/i"
	"github.com/beka-birhanu/alice-maze/api/identity"
	solveapi "github.com/beka-birhanu/alice-maze/api/solve"
	"github.com/beka-birhanu/alice-maze/config"
	"github.com/beka-birhanu/alice-maze/infrastruture/token"
	"github.com/beka-birhanu/alice-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	cfg               config.Config
	appLogger         *logrus.Logger
	registry          *prometheus.Registry
	solveService      *service.SolveService
	jwtTokenizer      *token.JwtService
	solveController   api_i.Controller
	metricsController api_i.Controller
	router            *api.Router
)

func initMetrics() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsController = api.NewMetricsController(registry)
	appLogger.Info("Metrics registry initialized")
}

func initSolveService() {
	var err error
	solveService, err = service.NewSolveService(&service.SolveOptions{
		MaxStepSizes: cfg.MaxStepSizes,
		Logger:       appLogger.WithField("component", config.ComponentSolver),
		Registerer:   registry,
	})
	if err != nil {
		appLogger.WithError(err).Error("Creating solve service")
		os.Exit(1)
	}
	appLogger.Info("Solve service initialized")
}

func initSolveController() {
	var err error
	solveController, err = solveapi.NewSolveController(solveService, service.MazeFactory{})
	if err != nil {
		appLogger.WithError(err).Error("Creating solve controller")
		os.Exit(1)
	}
	appLogger.Info("Solve controller initialized")
}

func initJWTTokenizer() {
	if cfg.JWTSecret == "" {
		appLogger.Warn("JWT_SECRET is not set, solve routes are unauthenticated")
		return
	}
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter() {
	var authorization gin.HandlerFunc
	if jwtTokenizer != nil {
		authorization = identity.Authorize(jwtTokenizer)
	}
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{solveController, metricsController},
		AuthorizationMiddleware: authorization,
		Logger:                  appLogger.WithField("component", config.ComponentAPI),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = config.NewLogger(os.Stdout, logrus.InfoLevel)
	cfg = config.Load(appLogger)
	appLogger.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	initMetrics()
	initSolveService()
	initSolveController()
	initJWTTokenizer()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.WithError(err).Error("Starting server")
		os.Exit(1)
	}
}
