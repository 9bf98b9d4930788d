package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"chat-commerce/config/postgre"
	"chat-commerce/internal/event"
	"chat-commerce/internal/intent"
	"chat-commerce/internal/middleware"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/razorpay"
	"chat-commerce/pkg/scope"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	// Infrastructure
	postgresDB *postgre.Lazy
	publisher  event.Publisher
	mw         middleware.Middleware
	tokens     scope.Manager

	// Integrations
	razorpay   razorpay.IRazorpay
	classifier intent.Classifier

	// Payment settings
	currency               string
	webhookSecret          string
	webhookRateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	PostgresDB *postgre.Lazy
	Publisher  event.Publisher
	Middleware middleware.Middleware
	Tokens     scope.Manager

	// Razorpay may be nil when no keys are configured.
	Razorpay   razorpay.IRazorpay
	Classifier intent.Classifier

	Currency               string
	WebhookSecret          string
	WebhookRateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Publisher == nil {
		cfg.Publisher = event.NewNopPublisher()
	}

	srv := &HTTPServer{
		l:                      logger,
		gin:                    gin.New(),
		port:                   cfg.Port,
		mode:                   cfg.Mode,
		environment:            cfg.Environment,
		shutdownTimeout:        cfg.ShutdownTimeout,
		allowedOrigins:         cfg.AllowedOrigins,
		postgresDB:             cfg.PostgresDB,
		publisher:              cfg.Publisher,
		mw:                     cfg.Middleware,
		tokens:                 cfg.Tokens,
		razorpay:               cfg.Razorpay,
		classifier:             cfg.Classifier,
		currency:               cfg.Currency,
		webhookSecret:          cfg.WebhookSecret,
		webhookRateLimitPerMin: cfg.WebhookRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	if srv.classifier == nil {
		return errors.New("intent classifier is required")
	}
	return nil
}
