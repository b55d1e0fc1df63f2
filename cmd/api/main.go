package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/config"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/logging"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/postgres"
	redisrepo "github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/redis"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
	httpx "github.com/njprem/ExploreIndia_APP_BackEnd/internal/transport/http"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/transport/mail"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
	"github.com/njprem/ExploreIndia_APP_BackEnd/migrations"
)

const (
	shutdownTimeout      = 10 * time.Second
	sessionSweepInterval = time.Hour
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("api exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Service:     "explore-india-api",
		Level:       cfg.LogLevel,
		LogstashTCP: cfg.LogstashTCPAddr,
	})
	if err != nil {
		return err
	}
	defer logger.Close()
	zerolog.DefaultContextLogger = &logger.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	db, err := postgres.NewWithPool(ctx, cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		return err
	}

	var sessions ports.SessionRepository
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client, err := redisrepo.NewClient(ctx, redisrepo.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(logger.Logger, client)
		sessions = redisrepo.NewSessionRepo(client)
	default:
		pgSessions := postgres.NewSessionRepo(db)
		go sweepSessions(ctx, pgSessions)
		sessions = pgSessions
	}

	places := postgres.NewPlaceRepo(db)
	auth := service.NewAuthService(
		postgres.NewUserRepo(db),
		sessions,
		util.NewJWTManager(cfg.SessionSecret, "explore-india"),
		service.AuthServiceConfig{SessionTTL: cfg.SessionTTL},
	)

	var notifier service.ContactNotifier
	if n := mail.NewContactNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.ContactNotifyTo); n.Configured() {
		notifier = n
	} else {
		logger.Info().Msg("contact notifications disabled: SMTP not configured")
	}

	e := httpx.NewRouter(httpx.RouterConfig{AllowOrigins: cfg.AllowOrigins, Logger: logger.Logger})
	httpx.RegisterHealth(e, db)
	httpx.RegisterSwagger(e)
	httpx.RegisterAuth(e, auth, httpx.CookieConfig{Secure: cfg.SessionCookieSecure, TTL: cfg.SessionTTL})
	httpx.RegisterPlaces(e, service.NewPlaceService(places))
	httpx.RegisterReviews(e, auth, service.NewReviewService(postgres.NewReviewRepo(db), places))
	httpx.RegisterUserPlaces(e, auth, service.NewUserPlaceService(postgres.NewUserPlaceRepo(db), places))
	httpx.RegisterContact(e, service.NewContactService(postgres.NewContactMessageRepo(db), notifier))

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("session_store", cfg.SessionStore).Msg("api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// sweepSessions deletes expired session rows until ctx is cancelled.
func sweepSessions(ctx context.Context, repo *postgres.SessionRepository) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				zerolog.Ctx(ctx).Info().Int64("deleted", n).Msg("expired sessions removed")
			}
		}
	}
}

func closeRedis(logger zerolog.Logger, client *goredis.Client) {
	if err := client.Close(); err != nil {
		logger.Warn().Err(err).Msg("close redis")
	}
}
