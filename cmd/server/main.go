package main

import (
	"alcyxob/gym-coach/internal/api"
	"alcyxob/gym-coach/internal/config"
	"alcyxob/gym-coach/internal/generator"
	"alcyxob/gym-coach/internal/repository"
	"alcyxob/gym-coach/internal/repository/memory"
	"alcyxob/gym-coach/internal/repository/mongo"
	"alcyxob/gym-coach/internal/service"
	"alcyxob/gym-coach/internal/storage"
	"alcyxob/gym-coach/pkg/logger"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		// Logger is not configured yet; fall back to defaults.
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Str("address", cfg.Server.Address).Msg("starting gym-coach server")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (set JWT_SECRET)")
	}

	gen, err := generator.New(cfg.GoalRules())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid goals.rules")
	}

	ctx := context.Background()
	db := memory.NewDB()

	// --- Optional MongoDB snapshot ---
	var snapshots repository.SnapshotRepository
	if cfg.Database.Enabled {
		dbClient, err := mongo.ConnectDB(ctx, cfg.Database.URI, cfg.Database.Timeout)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to MongoDB")
		}
		defer func() {
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Error().Err(err).Msg("failed to disconnect MongoDB")
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)

		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.Fatal().Err(err).Msg("could not create indexes")
		}
		snapshots = mongo.NewMongoSnapshotRepository(appDB)

		snap, err := snapshots.Load(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load snapshot")
		}
		if err := db.Restore(snap); err != nil {
			log.Fatal().Err(err).Msg("could not restore snapshot")
		}
		log.Info().
			Int("trainers", len(snap.Trainers)).
			Int("clients", len(snap.Clients)).
			Int("routines", len(snap.Routines)).
			Int("plans", len(snap.Plans)).
			Int("progress", len(snap.Progress)).
			Msg("snapshot restored")
	}

	// --- Optional report storage ---
	var reportStorage storage.ReportStorage
	if cfg.S3.Enabled {
		reportStorage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize S3 storage")
		}
	}

	// --- Initialize Services ---
	coach := service.NewCoachService(db.Store(), service.WithGenerator(gen))
	authService := service.NewAuthService(coach, cfg.JWT.Secret, cfg.JWT.Expiration)
	reportService := service.NewReportService(coach, reportStorage, cfg.S3.URLExpiry)

	if cfg.Seed.Demo {
		created, err := coach.SeedDemo(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not seed demo users")
		}
		if created {
			log.Info().
				Str("trainer", service.DemoTrainerUsername).
				Str("client", service.DemoClientUsername).
				Msg("demo users created")
		}
	}

	// --- HTTP Server ---
	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(coach, authService, reportService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if snapshots != nil {
		saveCtx, cancelSave := context.WithTimeout(context.Background(), cfg.Database.Timeout)
		defer cancelSave()
		if err := snapshots.Save(saveCtx, db.Snapshot()); err != nil {
			log.Error().Err(err).Msg("could not save snapshot")
		} else {
			log.Info().Msg("snapshot saved")
		}
	}

	log.Info().Msg("server exiting")
}
