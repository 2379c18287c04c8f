package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"gigmarket/internal/adapter/api"
	"gigmarket/internal/adapter/api/handler"
	apimiddleware "gigmarket/internal/adapter/api/middleware"
	"gigmarket/internal/adapter/api/router"
	"gigmarket/internal/adapter/repository"
	"gigmarket/internal/domain/entity"
	domainrepo "gigmarket/internal/domain/repository"
	"gigmarket/internal/infrastructure/firebase"
	"gigmarket/internal/infrastructure/geocoding"
	"gigmarket/internal/infrastructure/kafka"
	"gigmarket/internal/infrastructure/ratelimit"
	"gigmarket/internal/infrastructure/telemetry"
	"gigmarket/internal/infrastructure/websocket"
	"gigmarket/internal/usecase"
	"gigmarket/pkg/config"
	"gigmarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OtelEndpoint, cfg.OtelServiceName, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(reg)

	httpClient := telemetry.NewHTTPClient(cfg.GeocoderTimeout)
	opts := credentialOptions(cfg)

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	toolkit := firebase.NewIdentityToolkit(cfg.IdentityToolkitURL, cfg.FirebaseApiKey, httpClient)
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, toolkit)

	checks := map[string]handler.HealthCheck{}
	var closers []func() error

	var (
		profileRepo      domainrepo.ProfileRepository
		notificationRepo domainrepo.NotificationRepository
		prefRepo         domainrepo.PreferenceRepository
	)

	switch cfg.DocumentStore {
	case config.DocumentStoreFirestore:
		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		closers = append(closers, firestoreClient.Close)

		profileRepo = repository.NewFirestoreProfileRepository(firestoreClient)
		notificationRepo = repository.NewFirestoreNotificationRepository(firestoreClient)
		checks["firestore"] = func(ctx context.Context) error {
			_, err := firestoreClient.Collection(repository.CollectionFor(entity.RoleSeller)).Limit(1).Documents(ctx).Next()
			if errors.Is(err, iterator.Done) {
				return nil
			}
			return err
		}
	default:
		logger.Warn("Using in-memory document store; data is lost on restart")
		profileRepo = repository.NewMemoryProfileRepository()
		notificationRepo = repository.NewMemoryNotificationRepository()
	}

	switch cfg.PreferencesBackend {
	case config.PreferencesRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		closers = append(closers, rdb.Close)

		prefRepo = repository.NewRedisPreferenceRepository(rdb)
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	default:
		prefRepo = repository.NewMemoryPreferenceRepository()
	}

	var publisher usecase.DecisionPublisher = kafka.NopPublisher{}
	if cfg.KafkaEnabled() {
		p := kafka.NewDecisionPublisher(cfg.KafkaBrokers, cfg.KafkaNotificationTopic)
		closers = append(closers, p.Close)
		publisher = p
		logger.Info("Publishing decisions to Kafka topic %s", cfg.KafkaNotificationTopic)
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine(ctx)

	geocoder := geocoding.NewOpenCageClient(cfg.GeocoderURL, cfg.GeocoderApiKey, httpClient)

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient)
	sessionUseCase := usecase.NewSessionUseCase(firebaseAuthClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, geocoder, metrics)
	discoveryUseCase := usecase.NewDiscoveryUseCase(profileRepo, metrics)
	discoveryUseCase.StartSessionCleanup(ctx, 10*time.Minute, 30*time.Minute)
	gigUseCase := usecase.NewGigUseCase(profileRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, publisher, wsManager, limiter, metrics, cfg.NotificationKeyMode)
	preferenceUseCase := usecase.NewPreferenceUseCase(prefRepo)

	handlers := &handler.Handlers{
		Auth:         handler.NewAuthHandler(authUseCase),
		Session:      handler.NewSessionHandler(sessionUseCase),
		Profile:      handler.NewProfileHandler(profileUseCase),
		Gig:          handler.NewGigHandler(discoveryUseCase, gigUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		Preference:   handler.NewPreferenceHandler(preferenceUseCase),
		WebSocket:    handler.NewWebSocketHandler(wsManager, cfg.AllowedOrigins),
		Health:       handler.NewHealthHandler(checks),
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	} else {
		e.Use(middleware.CORS())
	}
	e.Use(apimiddleware.Metrics(metrics))

	e.Validator = api.NewValidator()

	router.Setup(e, handlers, router.Options{
		Auth:         apimiddleware.NewAuthMiddleware(firebaseAuthClient),
		Limiter:      limiter,
		AuthRPS:      cfg.RateLimitRPS,
		AuthBurst:    cfg.RateLimitBurst,
		MetricsStore: reg,
	})

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown: %v", err)
	}
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logger.Warn("Close failed: %v", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("Tracer shutdown: %v", err)
	}
}

// credentialOptions prefers inline service account JSON, then a key file,
// then application default credentials.
func credentialOptions(cfg *config.Config) []option.ClientOption {
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))}
	}

	if cfg.FirebaseServiceAccountPath != "" {
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); err != nil {
			log.Fatalf("Service account file does not exist: %s", cfg.FirebaseServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)}
	}

	logger.Info("Using application default credentials")
	return nil
}
