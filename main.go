package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/cache"
	"github.com/fieldsales/visits/internal/config"
	"github.com/fieldsales/visits/internal/handlers"
	"github.com/fieldsales/visits/internal/middleware"
	"github.com/fieldsales/visits/internal/migration"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/ratelimit"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/service"
	"github.com/fieldsales/visits/internal/validation"
	"github.com/fieldsales/visits/pkg/db/transactor"
)

const defaultShutdownTimeout = 10 * time.Second
const defaultConnectTimeout = 5 * time.Second
const loginLimiterKeyPrefix = "login_attempts"

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file present, proceeding with process environment")
	}

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	pool, err := connectToDb(connectCtx, cfg.PostgresCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pool.Close()

	redisClient, err := connectToRedis(connectCtx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer redisClient.Close()

	trx := transactor.NewPgxTransactor(pool)

	// migrations run as long as they need, only connection setup is bounded
	startupCtx := context.Background()

	if cfg.MigrationsCfg.Dir != "" {
		if err := migration.NewRunner(trx, cfg.MigrationsCfg.Dir).Run(startupCtx); err != nil {
			logrus.Fatal(err)
		}
	}

	if err := os.MkdirAll(cfg.UploadsCfg.Dir, 0o755); err != nil {
		logrus.Fatalf("failed to create uploads directory - %v", err)
	}

	userRps := repository.NewPostgresUserRepository(trx)
	if err := bootstrapAdmin(startupCtx, userRps, cfg.BootstrapAdminCfg); err != nil {
		logrus.Fatal(err)
	}

	start(app(cfg, pool, redisClient, trx, userRps), cfg.Port)
}

func connectToDb(ctx context.Context, cfg config.PostgresCfg) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to db - %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("didn't get response from database after sending ping request - %w", err)
	}
	return pool, nil
}

func connectToRedis(ctx context.Context, cfg config.RedisCfg) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("didn't get response from redis after sending ping request - %w", err)
	}
	return client, nil
}

func bootstrapAdmin(ctx context.Context, userRps repository.UserRepository, cfg config.BootstrapAdminCfg) error {
	if cfg.Email == "" {
		return nil
	}

	existing, err := userRps.FindByEmail(ctx, cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if cfg.Password == "" {
		return errors.New("bootstrap admin password is not set")
	}

	hash, err := auth.GeneratePasswordHash(cfg.Password)
	if err != nil {
		return err
	}

	if err := userRps.Create(ctx, &model.User{
		ID:           uuid.NewString(),
		Email:        cfg.Email,
		PasswordHash: hash,
		FullName:     cfg.FullName,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("failed to bootstrap admin account - %w", err)
	}

	logrus.Infof("bootstrap admin account %s created", cfg.Email)
	return nil
}

func start(e *echo.Echo, port int) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}

func app(cfg config.Config, pool *pgxpool.Pool, redisClient *redis.Client, trx transactor.PgxTransactor, userRps repository.UserRepository) *echo.Echo {
	jwtIssuer := auth.NewJwtIssuer(cfg.JwtCfg.Issuer, cfg.JwtCfg.SigningMethod, cfg.JwtCfg.TimeToLive, cfg.JwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(cfg.JwtCfg.SigningMethod, cfg.JwtCfg.PublicKey)

	customerRps := repository.NewPostgresCustomerRepository(pool)
	visitRps := repository.NewPostgresVisitRepository(pool)
	configRps := repository.NewPostgresConfigurationRepository(pool)
	uploadRps := repository.NewPostgresUploadRepository(pool)

	configCache := cache.NewRedisConfigurationCache(redisClient)
	loginLimiter := ratelimit.NewRedisAttemptLimiter(redisClient, loginLimiterKeyPrefix, cfg.LoginLimitCfg.MaxAttempts, cfg.LoginLimitCfg.Window)

	authSvc := service.NewAuthService(jwtIssuer, trx, userRps)
	visitSvc := service.NewVisitService(visitRps)
	customerSvc := service.NewCustomerService(customerRps)
	configSvc := service.NewConfigurationService(configRps, configCache)
	userSvc := service.NewUserService(userRps)
	uploadSvc := service.NewUploadService(uploadRps, cfg.UploadsCfg.Dir)

	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	visitHandler := handlers.NewVisitHTTPHandler(visitSvc)
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)
	configHandler := handlers.NewConfigurationHTTPHandler(configSvc)
	userHandler := handlers.NewUserHTTPHandler(userSvc)
	uploadHandler := handlers.NewUploadHTTPHandler(uploadSvc, cfg.UploadsCfg.Dir, cfg.UploadsCfg.MaxFiles)

	e := echo.New()
	e.HideBanner = true
	e.Validator = buildValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler(e)

	authenticate := middleware.Authenticate(jwtValidator)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	adminOrManager := middleware.RequireRole(model.RoleAdmin, model.RoleManager)

	apiGrp := e.Group("/api")

	authGrp := apiGrp.Group("/auth")
	authGrp.POST("/login", authHandler.Login, middleware.ThrottleLogin(loginLimiter))
	authGrp.POST("/register", authHandler.Register, authenticate, adminOnly)
	authGrp.GET("/me", authHandler.Me, authenticate)
	authGrp.PUT("/me", authHandler.UpdateMe, authenticate)

	visitGrp := apiGrp.Group("/visits", authenticate)
	visitGrp.GET("", visitHandler.GetAll)
	visitGrp.GET("/:id", visitHandler.Get)
	visitGrp.POST("", visitHandler.Post)
	visitGrp.PUT("/:id", visitHandler.Put)
	visitGrp.DELETE("/:id", visitHandler.DeleteByID)

	customerGrp := apiGrp.Group("/customers", authenticate)
	customerGrp.GET("", customerHandler.GetAll)
	customerGrp.GET("/:id", customerHandler.Get)
	customerGrp.POST("", customerHandler.Post, adminOrManager)
	customerGrp.PUT("/:id", customerHandler.Put, adminOrManager)
	customerGrp.DELETE("/:id", customerHandler.DeleteByID, adminOnly)

	configGrp := apiGrp.Group("/configurations", authenticate)
	configGrp.GET("", configHandler.GetAll)
	configGrp.POST("", configHandler.Post, adminOnly)
	configGrp.PUT("/:id", configHandler.Put, adminOnly)
	configGrp.DELETE("/:id", configHandler.DeleteByID, adminOnly)

	userGrp := apiGrp.Group("/users", authenticate, adminOnly)
	userGrp.GET("", userHandler.GetAll)
	userGrp.GET("/:id", userHandler.Get)
	userGrp.PUT("/:id", userHandler.Put)
	userGrp.PUT("/:id/permissions", userHandler.PutPermissions)
	userGrp.DELETE("/:id", userHandler.DeleteByID)

	uploadGrp := apiGrp.Group("/uploads")
	uploadGrp.GET("/files/:filename", uploadHandler.ServeFile)
	uploadGrp.POST("/single", uploadHandler.UploadSingle, authenticate)
	uploadGrp.POST("/multiple", uploadHandler.UploadMultiple, authenticate)
	uploadGrp.DELETE("/:id", uploadHandler.DeleteByID, authenticate)

	return e
}

func buildValidator() *validation.EchoValidator {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		logrus.Fatalf("failed to register validation translations - %v", err)
	}

	return validation.Echo(validate, translator)
}
