package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpctx "github.com/dtroode/vanashree/internal/api/http/context"
	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/api/http/router"
	httpserver "github.com/dtroode/vanashree/internal/api/http/server"
	"github.com/dtroode/vanashree/internal/api/http/view"
	"github.com/dtroode/vanashree/internal/catalog"
	"github.com/dtroode/vanashree/internal/config"
	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/messaging/rabbit"
	"github.com/dtroode/vanashree/internal/model"
	"github.com/dtroode/vanashree/internal/password"
	"github.com/dtroode/vanashree/internal/payment/stripe"
	"github.com/dtroode/vanashree/internal/repository"
	"github.com/dtroode/vanashree/internal/server"
	"github.com/dtroode/vanashree/internal/service"
	storage "github.com/dtroode/vanashree/internal/storage/minio"
	"github.com/dtroode/vanashree/internal/token"
	"github.com/dtroode/vanashree/web"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const bundledCatalog = "static/data/products.json"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userStore, db, err := repository.Open(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	if cfg.Session.Secret == config.DevSessionSecret {
		logger.Warn("SESSION_SECRET is not set, using the development default")
	}
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set, checkout will fail")
	}

	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to load catalog", "error", err)
	}
	logger.Info("catalog loaded", "products", products.Len())

	var publisher model.ContactPublisher
	if cfg.Rabbit.URL != "" {
		conn, err := rabbit.Connect(cfg.Rabbit.URL)
		if err != nil {
			logger.Fatal("failed to connect to rabbitmq", "error", err)
		}
		defer conn.Close()

		publisher, err = rabbit.NewContactPublisher(conn.Ch, cfg.Rabbit.Queue)
		if err != nil {
			logger.Fatal("failed to initialize contact publisher", "error", err)
		}
	}

	sessions := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.RememberTTL)
	accountService := service.NewAccount(userStore, password.NewBcrypt(0), logger)
	authService := service.NewAuth(accountService, userStore, sessions, logger)
	checkoutService := service.NewCheckout(stripe.NewGateway(cfg.Stripe.SecretKey, logger), cfg.HTTP.BaseURL, logger)
	contactService := service.NewContact(publisher, logger)

	renderer, err := view.NewRenderer(web.FS)
	if err != nil {
		logger.Fatal("failed to parse templates", "error", err)
	}
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		logger.Fatal("failed to open static assets", "error", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.New(
		router.Services{
			Catalog:  products,
			Accounts: accountService,
			Auth:     authService,
			Sessions: authService,
			Checkout: checkoutService,
			Contact:  contactService,
		},
		renderer,
		static,
		cookie.NewJar(cfg.HTTP.EnableHTTPS),
		httpctx.NewManager(),
		registry,
		cfg.Stripe.PublishableKey,
		logger,
	)
	httpServer := httpserver.NewHTTPServer(r.Register(), cfg.HTTP.Addr)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// loadCatalog prefers object storage, then an explicit file, then the
// catalog bundled with the binary. The bundled catalog seeds an empty bucket.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, error) {
	seed, err := fs.ReadFile(web.FS, bundledCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled catalog: %w", err)
	}

	switch {
	case cfg.Storage.Endpoint != "":
		mc, err := storage.Dial(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
		if err != nil {
			return nil, err
		}
		src, err := storage.NewClient(ctx, mc, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		return catalog.LoadObject(ctx, src, cfg.Catalog.ObjectKey, seed)
	case cfg.Catalog.Path != "":
		return catalog.LoadFile(cfg.Catalog.Path)
	default:
		return catalog.Load(bytes.NewReader(seed))
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
