package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brightimpact/impactboard/internal/api"
	"github.com/brightimpact/impactboard/internal/billing"
	"github.com/brightimpact/impactboard/internal/build"
	"github.com/brightimpact/impactboard/internal/config"
	"github.com/brightimpact/impactboard/internal/eventbus"
	"github.com/brightimpact/impactboard/internal/i18n"
	"github.com/brightimpact/impactboard/internal/logger"
	"github.com/brightimpact/impactboard/internal/notification"
	"github.com/brightimpact/impactboard/internal/server"
	"github.com/brightimpact/impactboard/internal/storage"
)

// NewServeCmd returns the "serve" subcommand that starts the HTTP server.
func NewServeCmd(cfg *config.AppConfig) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Impactboard web UI and API server",
		Long: `Start the Impactboard HTTP server which serves the REST API, the email
notification boundary, and the embedded dashboard UI.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// CLI flags override env config.
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", cfg.Port, "HTTP server port (overrides PORT env var)")

	return cmd
}

func runServe(cfg *config.AppConfig) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sysLogger, err := logger.NewSystemLogger(cfg.LogDir(), cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	sysLogger.Info("impactboard starting",
		slog.Int("port", cfg.Port),
		slog.String("data_dir", cfg.DataDir),
		slog.String("locale", cfg.DefaultLocale),
		slog.String("version", build.Version),
	)

	db, err := storage.NewSQLiteDB(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			sysLogger.Warn("closing database", slog.Any("error", cerr))
		}
	}()

	notifStore := storage.NewSQLiteNotificationStore(db)
	paymentStore := storage.NewSQLitePaymentEventStore(db)

	messages := i18n.Load(cfg.DefaultLocale)
	renderer := notification.NewRenderer(messages)
	provider := notification.NewSMTPProvider(cfg.SMTP())
	dispatcher := notification.NewDispatcher(renderer, provider, notifStore, sysLogger)

	bus := eventbus.New(0, sysLogger)
	defer bus.Close()

	sink := billing.NewLogSink(sysLogger)
	processor := billing.NewProcessor(sink, paymentStore, sysLogger)
	bus.Subscribe(processor.Listener())

	apiSrv := api.New(dispatcher, renderer, notifStore, bus, sysLogger)
	srv := server.New(apiSrv, WebFS, cfg.Port, cfg.AllowedOrigins(), sysLogger)

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	sysLogger.Info("server ready", "url", url)
	fmt.Printf("Impactboard %s running at %s\n", build.Version, url)
	fmt.Printf("Logs: %s\n", cfg.LogDir())

	return srv.Run(ctx)
}
