package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/cache"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
)

// ConfigurationService provides lookup configuration functionality.
// Reads go through the cache, admin writes evict it.
type ConfigurationService interface {
	FindActive(ctx context.Context, configType string) ([]*model.Configuration, error)
	Create(context.Context, *model.Configuration) (*model.Configuration, error)
	Update(context.Context, string, *repository.ConfigurationUpdate) (*model.Configuration, error)
	DeleteByID(context.Context, string) error
}

type configurationService struct {
	configRps   repository.ConfigurationRepository
	configCache cache.ConfigurationCache
}

// NewConfigurationService builds ConfigurationService
func NewConfigurationService(configRps repository.ConfigurationRepository, configCache cache.ConfigurationCache) ConfigurationService {
	return &configurationService{configRps: configRps, configCache: configCache}
}

func (s *configurationService) FindActive(ctx context.Context, configType string) ([]*model.Configuration, error) {
	cached, err := s.configCache.FindByType(ctx, configType)
	if err != nil {
		logrus.Errorf("failed to read configurations from cache - %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	configs, err := s.configRps.FindActive(ctx, configType)
	if err != nil {
		return nil, err
	}

	if err := s.configCache.Cache(ctx, configType, configs); err != nil {
		logrus.Errorf("failed to cache configurations - %v", err)
	}
	return configs, nil
}

func (s *configurationService) Create(ctx context.Context, c *model.Configuration) (*model.Configuration, error) {
	c.ID = uuid.NewString()

	if err := s.configRps.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.configCache.Evict(ctx, c.ConfigType); err != nil {
		logrus.Errorf("failed to evict configurations cache - %v", err)
	}
	return c, nil
}

func (s *configurationService) Update(ctx context.Context, id string, upd *repository.ConfigurationUpdate) (*model.Configuration, error) {
	c, err := s.configRps.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, echo.ErrNotFound
	}

	// config type might have changed, drop everything
	if err := s.configCache.EvictAll(ctx); err != nil {
		logrus.Errorf("failed to evict configurations cache - %v", err)
	}
	return c, nil
}

func (s *configurationService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.configRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.ErrNotFound
	}

	if err := s.configCache.EvictAll(ctx); err != nil {
		logrus.Errorf("failed to evict configurations cache - %v", err)
	}
	return nil
}
