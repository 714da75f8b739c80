// Package di wires configuration, storage, services, and handlers into a
// running application. Storage is selected once at startup: Postgres-backed
// repositories normally, in-memory repositories in mock mode.
package di

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/events"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/handler"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/repository"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/service"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/config"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/database"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
)

// Container holds every constructed component.
type Container struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        *database.PostgresDB
	Publisher events.Publisher

	Events        *service.Resource[*domain.Event]
	Sponsors      *service.Resource[*domain.Sponsor]
	Partners      *service.Resource[*domain.Partner]
	Chapters      *service.Resource[*domain.Chapter]
	Opportunities *service.Resource[*domain.Opportunity]
	Mentorships   *service.Resource[*domain.Mentorship]
	Questions     *service.Resource[*domain.Question]
	Spotlights    *service.Resource[*domain.Spotlight]
	RSVPs         *service.RSVP

	registrars []registrar
}

type registrar interface {
	Register(rg *gin.RouterGroup)
}

// New builds the container. In mock mode no database connection is made.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: log}

	if !cfg.API.UseMockAPI {
		db, err := database.NewPostgres(ctx, &database.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
			MaxConns: int32(cfg.Database.MaxOpenConns),
			MinConns: int32(cfg.Database.MaxIdleConns),
		})
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		c.DB = db

		if err := repository.EnsureSchema(ctx, db.Pool(), catalog.TablePaths()...); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	if cfg.Kafka.Enabled {
		publisher, err := events.NewKafkaPublisher(&events.KafkaConfig{
			Brokers:  cfg.Kafka.Brokers,
			Topic:    cfg.Kafka.Topic,
			ClientID: cfg.Kafka.ClientID,
		}, log)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("connect kafka: %w", err)
		}
		c.Publisher = publisher
	} else {
		c.Publisher = events.NewNoopPublisher()
	}

	var eventRepo repository.Repository[*domain.Event]
	c.Events, eventRepo = wire(c, catalog.Events())
	c.Sponsors, _ = wire(c, catalog.Sponsors())
	c.Partners, _ = wire(c, catalog.Partners())
	c.Chapters, _ = wire(c, catalog.Chapters())
	c.Opportunities, _ = wire(c, catalog.Opportunities())
	c.Mentorships, _ = wire(c, catalog.Mentorships())
	c.Questions, _ = wire(c, catalog.Questions())
	c.Spotlights, _ = wire(c, catalog.Spotlights())

	c.RSVPs = service.NewRSVP(eventRepo, c.Publisher, log)
	c.registrars = append(c.registrars, handler.NewRSVP(c.RSVPs))

	return c, nil
}

// wire builds the repository, service, and handler for one resource and
// queues the handler for route registration.
func wire[T domain.Entity](c *Container, res catalog.Resource[T]) (*service.Resource[T], repository.Repository[T]) {
	var repo repository.Repository[T]
	if c.DB != nil {
		repo = repository.NewPostgres(c.DB.Pool(), res.Path, res.New)
	} else {
		repo = repository.NewMemory(res.New)
	}

	svc := service.NewResource(res, repo, c.Publisher, c.Logger)
	c.registrars = append(c.registrars, handler.NewResource(svc))
	return svc, repo
}

// RegisterRoutes mounts every resource handler plus the health probes.
func (c *Container) RegisterRoutes(api *gin.RouterGroup, root *gin.RouterGroup) {
	pingers := map[string]handler.Pinger{}
	if c.DB != nil {
		db := c.DB
		pingers["database"] = pingerFunc(func() error {
			return db.Ping(context.Background())
		})
	}
	handler.NewHealth(c.Config.App.Name, c.Config.App.Version, pingers).Register(root)

	for _, r := range c.registrars {
		r.Register(api)
	}
}

type pingerFunc func() error

func (f pingerFunc) Ping() error { return f() }

// Close releases held resources in reverse construction order.
func (c *Container) Close() {
	if c.Publisher != nil {
		c.Publisher.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
