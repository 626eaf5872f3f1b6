package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/events"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type repositories struct {
	users     repository.UserRepository
	goals     repository.GoalRepository
	checkIns  repository.CheckInRepository
	favorites repository.FavoriteRepository
}

// @title Fitness Tracker API
// @version 1.0
// @description Readiness check-ins, the exercise library, favorites and personal goals.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logging.Setup(logging.SetupParams{
		Level:      cfg.Log.Level,
		FormatJSON: cfg.Log.JSON,
		FileName:   cfg.Log.File,
		ToStdout:   cfg.Log.Stdout,
	})
	log.Info("starting fitness tracker server")

	ctx := context.Background()

	// --- Repositories ---
	repos := repositories{
		users:     memory.NewUserRepository(),
		goals:     memory.NewGoalRepository(),
		checkIns:  memory.NewCheckInRepository(),
		favorites: memory.NewFavoriteRepository(),
	}
	if cfg.Database.Driver == config.DriverMongo {
		dbClient, err := mongo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			log.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Info("disconnecting MongoDB")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)

		go func() {
			indexCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureIndexes(indexCtx, appDB)
			log.Info("index creation completed")
		}()

		repos.goals = mongo.NewMongoGoalRepository(appDB)
		repos.checkIns = mongo.NewMongoCheckInRepository(appDB)
		repos.favorites = mongo.NewMongoFavoriteRepository(appDB)
		if cfg.Auth.Provider == config.AuthProviderMongo {
			repos.users = mongo.NewMongoUserRepository(appDB)
		}
	}
	if cfg.Auth.Provider == config.AuthProviderMock {
		if err := service.SeedDemoAccounts(ctx, repos.users); err != nil {
			log.Fatalf("could not seed demo accounts: %v", err)
		}
		log.Infof("mock auth provider ready with %d demo accounts", len(service.DemoAccounts))
	}

	// --- Exercise library ---
	exerciseCatalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("could not load exercise catalog: %v", err)
	}
	log.Infof("exercise catalog loaded with %d exercises", exerciseCatalog.Len())

	// --- Snapshots ---
	snapshots := service.SnapshotOptions{
		Prefix:        cfg.S3.SnapshotPrefix,
		PresignExpiry: cfg.S3.PresignExpiry,
	}
	if cfg.S3.Enabled {
		snapshots.Storage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
	}

	// --- Events ---
	var sink events.Publisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		sink = events.NewKafkaPublisher(cfg.Kafka.Brokers, map[string]string{
			events.CheckInRecorded: cfg.Kafka.Topics.CheckInRecorded,
			events.GoalCompleted:   cfg.Kafka.Topics.GoalCompleted,
		})
	}
	// runs after the HTTP server has drained, so no handler fires events anymore
	publisher := events.NewAsyncPublisher(sink)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorf("failed to close event publisher: %v", err)
		}
	}()

	// --- Services ---
	authService := service.NewAuthService(repos.users, cfg.JWT.Secret, cfg.JWT.Expiration, service.AuthOptions{
		MaxFailedAttempts: cfg.Auth.MaxFailedAttempts,
		LockoutWindow:     cfg.Auth.LockoutWindow,
	})
	exerciseService := service.NewExerciseService(exerciseCatalog, repos.favorites)
	goalService := service.NewGoalService(repos.goals, publisher)
	readinessService := service.NewReadinessService(repos.checkIns, publisher, snapshots)
	profileService := service.NewProfileService(repos.users)

	// --- HTTP ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, authService, exerciseService, goalService, readinessService, profileService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	log.Info("server exiting")
}

// loadCatalog builds the exercise library from the configured source.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Source != config.CatalogJSON {
		return catalog.Builtin(), nil
	}

	if !storage.IsS3URI(cfg.Catalog.Path) {
		f, err := os.Open(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return catalog.LoadJSON(f)
	}

	bucket, key, err := storage.ParseS3URI(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	s3cfg := cfg.S3
	s3cfg.BucketName = bucket
	store, err := storage.NewS3Storage(ctx, s3cfg)
	if err != nil {
		return nil, fmt.Errorf("catalog storage: %w", err)
	}
	body, err := store.GetObject(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("catalog object %s: %w", key, err)
	}
	defer body.Close()
	return catalog.LoadJSON(body)
}
