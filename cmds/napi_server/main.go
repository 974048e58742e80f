package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	retry "github.com/sethvargo/go-retry"

	"github.com/isabella232/sdc-napi/internal/config"
	"github.com/isabella232/sdc-napi/internal/ipam"
	"github.com/isabella232/sdc-napi/internal/nictags"
	"github.com/isabella232/sdc-napi/internal/storage"
	logging "github.com/isabella232/sdc-napi/pkg"
)

// GitCommit holds the commit version
var GitCommit string

type flags struct {
	config   string
	logLevel string
	address  string
	version  bool
}

func main() {
	f := flags{}
	flag.StringVar(&f.config, "config", "./.env", "path to the env configuration file")
	flag.StringVar(&f.logLevel, "log-level", "info", "log level [debug|info|warn|error|fatal|panic]")
	flag.StringVar(&f.address, "address", "", "listen address, overrides the configured one")
	flag.BoolVar(&f.version, "v", false, "shows the package version")
	flag.Parse()

	// shows version and exit
	if f.version {
		fmt.Printf("git rev: %s\n", GitCommit)
		os.Exit(0)
	}

	logging.SetupLogging(f.logLevel)

	cfg, err := config.ReadConfFile(f.config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}
	if f.address != "" {
		cfg.Listen = f.address
	}
	if cfg.Debug {
		logging.SetupLogging("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	core := ipam.NewCore(store, nictags.NewStatic(cfg.NicTags), ipam.Options{FabricNicTag: cfg.FabricNicTag})

	server, err := createServer(cfg.Listen, core)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mux server")
	}

	go func() {
		log.Info().Str("listening on", cfg.Listen).Msg("Server started ...")
		if err := server.ListenAndServe(); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("server stopped gracefully")
			} else {
				log.Error().Err(err).Msg("server stopped unexpectedly")
			}
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down server")
	}
}

// openStore builds the configured storage backend. The postgres backend
// is retried while the database comes up.
func openStore(ctx context.Context, cfg config.Configuration) (storage.Store, error) {
	switch cfg.Store {
	case "bolt":
		return storage.NewBoltStore(cfg.BoltPath)
	case "postgres":
		var store storage.Store
		err := retry.Do(ctx, retry.WithMaxRetries(5, retry.NewConstant(3*time.Second)), func(ctx context.Context) error {
			var err error
			store, err = storage.NewPostgresStore(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresMaxConns)
			if err != nil {
				log.Warn().Err(err).Msg("waiting for postgres")
				return retry.RetryableError(err)
			}
			return nil
		})
		return store, err
	default:
		return storage.NewMemStore(), nil
	}
}

func createServer(address string, core *ipam.Core) (*http.Server, error) {
	log.Info().Msg("Creating server")

	router := mux.NewRouter().StrictSlash(true)

	if err := ipam.Setup(router, GitCommit, core); err != nil {
		return nil, err
	}

	return &http.Server{
		Handler:           http.TimeoutHandler(router, 30*time.Second, http.ErrHandlerTimeout.Error()),
		Addr:              address,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}
