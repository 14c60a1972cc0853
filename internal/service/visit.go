package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/scoring"
)

// VisitService provides shop visit functionality. Every operation is scoped
// by caller identity: admins see all visits, everyone else only their own.
type VisitService interface {
	FindAll(ctx context.Context, ident auth.Identity, f repository.VisitFilter) ([]*model.Visit, error)
	FindByID(ctx context.Context, ident auth.Identity, id string) (*model.Visit, error)
	Create(ctx context.Context, ident auth.Identity, v *model.Visit) (*model.Visit, error)
	Update(ctx context.Context, ident auth.Identity, id string, upd *repository.VisitUpdate) (*model.Visit, error)
	DeleteByID(ctx context.Context, ident auth.Identity, id string) error
}

type visitService struct {
	visitRps repository.VisitRepository
}

// NewVisitService builds VisitService
func NewVisitService(visitRps repository.VisitRepository) VisitService {
	return &visitService{visitRps: visitRps}
}

func (s *visitService) FindAll(ctx context.Context, ident auth.Identity, f repository.VisitFilter) ([]*model.Visit, error) {
	return s.visitRps.FindAll(ctx, ownerScope(ident), f)
}

func (s *visitService) FindByID(ctx context.Context, ident auth.Identity, id string) (*model.Visit, error) {
	v, err := s.visitRps.FindByID(ctx, id, ownerScope(ident))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, echo.ErrNotFound
	}
	return v, nil
}

// Create stores new visit. The creator is always the caller and both derived
// fields come from the scoring engine, whatever the request carried.
func (s *visitService) Create(ctx context.Context, ident auth.Identity, v *model.Visit) (*model.Visit, error) {
	v.ID = uuid.NewString()
	v.UserID = ident.ID
	v.CalculatedScore = scoring.Score(scoring.Inputs{
		ProductVisibilityScore: v.ProductVisibilityScore,
		TrainingProvided:       v.TrainingProvided,
		CommercialOutcome:      v.CommercialOutcome,
		OverallSatisfaction:    v.OverallSatisfaction,
	})
	v.PriorityLevel = scoring.Priority(v.CalculatedScore)

	if err := s.visitRps.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update rewrites the submitted fields and recomputes both derived fields
// from the scoring inputs present in this payload. Omitted inputs count as
// zero, so a partial update may lower a previously higher score.
func (s *visitService) Update(ctx context.Context, ident auth.Identity, id string, upd *repository.VisitUpdate) (*model.Visit, error) {
	var in scoring.Inputs
	if upd.ProductVisibilityScore != nil {
		in.ProductVisibilityScore = *upd.ProductVisibilityScore
	}
	if upd.TrainingProvided != nil {
		in.TrainingProvided = *upd.TrainingProvided
	}
	if upd.CommercialOutcome != nil {
		in.CommercialOutcome = *upd.CommercialOutcome
	}
	if upd.OverallSatisfaction != nil {
		in.OverallSatisfaction = *upd.OverallSatisfaction
	}

	upd.CalculatedScore = scoring.Score(in)
	upd.PriorityLevel = scoring.Priority(upd.CalculatedScore)

	v, err := s.visitRps.Update(ctx, id, ownerScope(ident), upd)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, echo.ErrNotFound
	}
	return v, nil
}

func (s *visitService) DeleteByID(ctx context.Context, ident auth.Identity, id string) error {
	deleted, err := s.visitRps.DeleteByID(ctx, id, ownerScope(ident))
	if err != nil {
		return err
	}
	if !deleted {
		return echo.ErrNotFound
	}
	return nil
}

// ownerScope returns user id filter for ownership-scoped queries,
// empty scope means no filtering
func ownerScope(ident auth.Identity) string {
	if ident.IsAdmin() {
		return ""
	}
	return ident.ID
}
