package service

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/repository/mocks"
	"github.com/fieldsales/visits/internal/scoring"
)

var testVisitCtx = context.Background()

var repIdentity = auth.Identity{
	ID:    "0c21e342-8dde-4b57-a1ba-cbb1e9ae2b7c",
	Email: "rep@fieldsales.io",
	Role:  model.RoleUser,
}

var adminIdentity = auth.Identity{
	ID:    "a6709a3e-14c0-4d34-99f3-2a66e592ca7f",
	Email: "admin@fieldsales.io",
	Role:  model.RoleAdmin,
}

type visitServiceTestSuite struct {
	suite.Suite
	visitSvc     VisitService
	visitRpsMock *mocks.VisitRepository
}

func (s *visitServiceTestSuite) SetupTest() {
	s.visitRpsMock = mocks.NewVisitRepository(s.T())
	s.visitSvc = NewVisitService(s.visitRpsMock)
}

func (s *visitServiceTestSuite) TestCreateDerivesScoreAndOwner() {
	v := &model.Visit{
		CustomerID:             "7a6a7dfd-c36d-4566-bf14-a14273d2ccd3",
		ShopName:               "Green Thumb Garden Center",
		VisitDate:              time.Now().UTC(),
		VisitPurpose:           "routine_check",
		ProductVisibilityScore: 100,
		TrainingProvided:       true,
		CommercialOutcome:      scoring.OutcomeNewOrder,
		OverallSatisfaction:    10,
	}

	s.visitRpsMock.On("Create", testVisitCtx, mock.AnythingOfType("*model.Visit")).Return(nil).Once()

	s.T().Log("create visit with best possible inputs")
	{
		created, err := s.visitSvc.Create(testVisitCtx, repIdentity, v)
		s.Assert().NoError(err, "visit payload is correct but error was raised")
		s.Assert().Equal(repIdentity.ID, created.UserID, "visit owner must be the caller")
		s.Assert().NotEmpty(created.ID, "visit id must be generated")
		s.Assert().Equal(float64(100), created.CalculatedScore, "best inputs must produce the maximum score")
		s.Assert().Equal(scoring.PriorityLow, created.PriorityLevel, "high score must map to low follow-up priority")
	}
}

func (s *visitServiceTestSuite) TestUpdateRecomputesScoreFromPayload() {
	visitID := "3f7a7a7e-3f3f-4ac6-9a5c-0a52a29237c5"
	satisfaction := 4.0
	upd := &repository.VisitUpdate{OverallSatisfaction: &satisfaction}

	s.visitRpsMock.On("Update", testVisitCtx, visitID, repIdentity.ID, upd).Return(&model.Visit{ID: visitID}, nil).Once()

	s.T().Log("update visit with satisfaction only, omitted inputs count as zero")
	{
		_, err := s.visitSvc.Update(testVisitCtx, repIdentity, visitID, upd)
		s.Assert().NoError(err, "visit update is correct but error was raised")
		s.Assert().Equal(float64(10), upd.CalculatedScore, "score must be recomputed from the submitted inputs only")
		s.Assert().Equal(scoring.PriorityHigh, upd.PriorityLevel, "low score must map to high follow-up priority")
	}
}

func (s *visitServiceTestSuite) TestFindAllScopedToOwner() {
	f := repository.VisitFilter{Limit: 100}

	s.visitRpsMock.On("FindAll", testVisitCtx, repIdentity.ID, f).Return([]*model.Visit{}, nil).Once()

	s.T().Log("regular user listing must be scoped to own visits")
	{
		_, err := s.visitSvc.FindAll(testVisitCtx, repIdentity, f)
		s.Assert().NoError(err, "listing is correct but error was raised")
	}
}

func (s *visitServiceTestSuite) TestFindAllAdminSeesEverything() {
	f := repository.VisitFilter{Limit: 100}

	s.visitRpsMock.On("FindAll", testVisitCtx, "", f).Return([]*model.Visit{}, nil).Once()

	s.T().Log("admin listing must not be scoped")
	{
		_, err := s.visitSvc.FindAll(testVisitCtx, adminIdentity, f)
		s.Assert().NoError(err, "listing is correct but error was raised")
	}
}

func (s *visitServiceTestSuite) TestFindByIDNotFound() {
	visitID := "b8232e6f-33d1-49bc-b0ad-31aa4a0cbba3"

	s.visitRpsMock.On("FindByID", testVisitCtx, visitID, repIdentity.ID).Return(nil, nil).Once()

	s.T().Log("visit of another user must be reported as absent")
	{
		_, err := s.visitSvc.FindByID(testVisitCtx, repIdentity, visitID)
		s.Assert().Error(err, "visit is not visible to the caller but no error raised")
		s.Assert().ErrorIs(err, echo.ErrNotFound, "it must be not found error")
	}
}

func (s *visitServiceTestSuite) TestDeleteNotFound() {
	visitID := "b8232e6f-33d1-49bc-b0ad-31aa4a0cbba3"

	s.visitRpsMock.On("DeleteByID", testVisitCtx, visitID, repIdentity.ID).Return(false, nil).Once()

	s.T().Log("deleting visit of another user must be reported as absent")
	{
		err := s.visitSvc.DeleteByID(testVisitCtx, repIdentity, visitID)
		s.Assert().Error(err, "visit is not visible to the caller but no error raised")
		s.Assert().ErrorIs(err, echo.ErrNotFound, "it must be not found error")
	}
}

// start visit service test suite
func TestVisitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(visitServiceTestSuite))
}
