package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ppmconsultants/ppmsite/internal/analytics"
	"github.com/ppmconsultants/ppmsite/internal/contact"
	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/live"
	"github.com/ppmconsultants/ppmsite/internal/rotator"
	"github.com/ppmconsultants/ppmsite/internal/server"
	"github.com/ppmconsultants/ppmsite/internal/web"
)

var (
	servePort   int
	serveImages string
	serveWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long: `Starts the HTTP server for the marketing site, including the live hero
channel on /ws/hero, the contact form and the analytics endpoints. Content
edits are picked up without a restart when a content file is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := content.NewStore(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		database, err := openDB(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		tracker, err := analytics.NewTracker(database, logger.Named("analytics"), cfg.Analytics.Enabled, cfg.Analytics.Exclude)
		if err != nil {
			return err
		}

		heroInterval := cfg.Rotator.Interval()
		hero := live.NewHero(func() []rotator.Slide { return store.Site().HeroSlides() }, live.Options{
			Interval:        heroInterval,
			Timeline:        rotator.HeroTimeline().Scaled(cfg.Rotator.TransitionScale),
			AllowAllOrigins: cfg.AllowAllOrigins,
			Events:          tracker,
			Logger:          logger.Named("hero"),
		})

		pages := web.New(web.Options{
			Content:      store,
			Contact:      contact.NewStore(database, logger.Named("contact")),
			Subjects:     cfg.Contact.Subjects,
			HeroInterval: &heroInterval,
			ImagesDir:    imagesDir(serveImages),
			Logger:       logger.Named("web"),
		})

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllOrigins}, logger)
		srv.Router().Handle("/ws/hero", hero)
		srv.OnShutdown(hero.CloseAll)
		srv.Group(func(r chi.Router) {
			pages.RegisterStatic(r)
			analytics.RegisterRoutes(r, tracker)
		})
		srv.Group(func(r chi.Router) {
			r.Use(tracker.Middleware)
			pages.RegisterRoutes(r)
		})

		logger.Info("starting ppmsite",
			zap.Int("port", cfg.Port),
			zap.String("content", contentSource(store)),
			zap.String("database", database.Path()),
			zap.Bool("analytics", tracker.Enabled()),
		)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Run(ctx) })
		if serveWatch {
			g.Go(func() error { return store.Watch(ctx, logger.Named("content")) })
		}
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func contentSource(store *content.Store) string {
	if store.Path() == "" {
		return "built-in"
	}
	return store.Path()
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveImages, "images", "images", "directory served under /images/ when it exists")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}
