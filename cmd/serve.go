package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/khadija-altaf/folio/internal/app"
	"github.com/khadija-altaf/folio/internal/assets"
	"github.com/khadija-altaf/folio/internal/db"
	"github.com/khadija-altaf/folio/internal/server"
	"github.com/khadija-altaf/folio/internal/storage"
	"github.com/khadija-altaf/folio/internal/web"
)

const (
	janitorInterval = time.Minute
	shutdownTimeout = 10 * time.Second
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long:  `Starts the HTTP server with the eight portfolio pages, the JSON API and the live websocket. Visitor theme preferences are kept in a SQLite database under the data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		log, err := newLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}

		content, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		dbPath := cfg.DBPath()
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sessions := app.NewManager(sessionOptions(cfg, content, log), storage.SQLiteFactory(database), cfg.SessionIdleTTL)
		sessions.Start(ctx, janitorInterval)
		defer sessions.Close()

		front, err := web.New(sessions, content, assets.New(cfg.AssetsDir, cfg.AssetPatterns), log)
		if err != nil {
			return fmt.Errorf("creating web front end: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, log)
		front.RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error(err, "server shutdown")
			}
		}()

		log.WithFields(map[string]any{
			"version":  Version,
			"port":     cfg.Port,
			"database": dbPath,
			"assets":   cfg.AssetsDir,
		}).Info("folio starting")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides the config)")
	rootCmd.AddCommand(serveCmd)
}
