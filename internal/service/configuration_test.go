package service

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cachemocks "github.com/fieldsales/visits/internal/cache/mocks"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/repository/mocks"
)

var testConfigCtx = context.Background()

var visitPurposes = []*model.Configuration{
	{ID: "9e2a0d6c-92ad-4a83-8c17-4a68fc2e6bfb", ConfigType: "visit_purposes", ConfigName: "Routine Check", ConfigValue: "routine_check", DisplayOrder: 1, IsActive: true},
	{ID: "4dfb2e52-7801-4e25-b6f3-1df2b18d09c4", ConfigType: "visit_purposes", ConfigName: "Training Session", ConfigValue: "training", DisplayOrder: 2, IsActive: true},
}

type configurationServiceTestSuite struct {
	suite.Suite
	configSvc       ConfigurationService
	configRpsMock   *mocks.ConfigurationRepository
	configCacheMock *cachemocks.ConfigurationCache
}

func (s *configurationServiceTestSuite) SetupTest() {
	s.configRpsMock = mocks.NewConfigurationRepository(s.T())
	s.configCacheMock = cachemocks.NewConfigurationCache(s.T())
	s.configSvc = NewConfigurationService(s.configRpsMock, s.configCacheMock)
}

func (s *configurationServiceTestSuite) TestFindActiveCacheHit() {
	configType := "visit_purposes"

	s.configCacheMock.On("FindByType", testConfigCtx, configType).Return(visitPurposes, nil).Once()

	s.T().Log("cached configurations must be served without touching the database")
	{
		configs, err := s.configSvc.FindActive(testConfigCtx, configType)
		s.Assert().NoError(err, "cache has entries but error was raised")
		s.Assert().Equal(visitPurposes, configs, "cached entries must be returned as is")
		s.configRpsMock.AssertNotCalled(s.T(), "FindActive", testConfigCtx, configType)
	}
}

func (s *configurationServiceTestSuite) TestFindActiveCacheMiss() {
	configType := "visit_purposes"

	s.configCacheMock.On("FindByType", testConfigCtx, configType).Return(nil, nil).Once()
	s.configRpsMock.On("FindActive", testConfigCtx, configType).Return(visitPurposes, nil).Once()
	s.configCacheMock.On("Cache", testConfigCtx, configType, visitPurposes).Return(nil).Once()

	s.T().Log("cache miss must load from database and backfill the cache")
	{
		configs, err := s.configSvc.FindActive(testConfigCtx, configType)
		s.Assert().NoError(err, "database has entries but error was raised")
		s.Assert().Equal(visitPurposes, configs, "database entries must be returned")
	}
}

func (s *configurationServiceTestSuite) TestCreateEvictsType() {
	nc := &model.Configuration{ConfigType: "products", ConfigName: "Coco Professional", ConfigValue: "coco_professional"}

	s.configRpsMock.On("Create", testConfigCtx, mock.AnythingOfType("*model.Configuration")).Return(nil).Once()
	s.configCacheMock.On("Evict", testConfigCtx, nc.ConfigType).Return(nil).Once()

	s.T().Log("creating configuration must evict its type from cache")
	{
		created, err := s.configSvc.Create(testConfigCtx, nc)
		s.Assert().NoError(err, "configuration is correct but error was raised")
		s.Assert().NotEmpty(created.ID, "configuration id must be generated")
	}
}

func (s *configurationServiceTestSuite) TestUpdateEvictsEverything() {
	configID := "a71bfe0a-13ae-4a63-a079-eae5f8f5b1ee"
	name := "Terra Professional Plus"
	upd := &repository.ConfigurationUpdate{ConfigName: &name}

	s.configRpsMock.On("Update", testConfigCtx, configID, upd).Return(visitPurposes[0], nil).Once()
	s.configCacheMock.On("EvictAll", testConfigCtx).Return(nil).Once()

	s.T().Log("updating configuration must drop the whole cache")
	{
		_, err := s.configSvc.Update(testConfigCtx, configID, upd)
		s.Assert().NoError(err, "configuration update is correct but error was raised")
	}
}

func (s *configurationServiceTestSuite) TestDeleteNotFound() {
	configID := "a71bfe0a-13ae-4a63-a079-eae5f8f5b1ee"

	s.configRpsMock.On("DeleteByID", testConfigCtx, configID).Return(false, nil).Once()

	s.T().Log("deleting absent configuration must be reported as not found")
	{
		err := s.configSvc.DeleteByID(testConfigCtx, configID)
		s.Assert().Error(err, "configuration is absent but no error raised")
		s.Assert().ErrorIs(err, echo.ErrNotFound, "it must be not found error")
	}
}

// start configuration service test suite
func TestConfigurationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(configurationServiceTestSuite))
}
