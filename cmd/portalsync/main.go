// portalsync flushes the durable RSVP outbox against the live API. Portal
// edges append RSVPs to a Redis list while the backend is unreachable; this
// worker drains that list on an interval, signing a short-lived token for
// each entry's user so the API attributes the RSVP correctly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/outbox"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/client"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/config"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name + "-portalsync",
		Development: cfg.IsDevelopment(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := redis.New(ctx, &redis.Config{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal("connect redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	ob := outbox.NewRedis(rdb, cfg.Outbox.RedisKey)
	rsvps := client.NewRSVPClient(client.HTTPConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, nil)

	submit := func(ctx context.Context, entry outbox.Entry) error {
		token, err := userToken(cfg, entry.UserID)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		if entry.Cancel {
			return rsvps.Cancel(ctx, entry.EventID, token)
		}
		return rsvps.Register(ctx, entry.EventID, token)
	}

	drainer := outbox.NewDrainer(ob, submit, outbox.DrainerConfig{
		Interval:  cfg.Outbox.DrainInterval,
		BatchSize: cfg.Outbox.BatchSize,
	}, log)

	drainer.Start()
	log.Info("portalsync running",
		zap.String("outbox_key", cfg.Outbox.RedisKey),
		zap.Duration("interval", cfg.Outbox.DrainInterval))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	drainer.Stop()
	submitted, requeued := drainer.Stats()
	log.Info("portalsync stopped",
		zap.Int64("submitted", submitted),
		zap.Int64("requeued", requeued))
}

// userToken signs a short-lived token carrying the entry's user identity.
func userToken(cfg *config.Config, userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    "member",
		"iss":     cfg.JWT.Issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(cfg.JWT.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}
