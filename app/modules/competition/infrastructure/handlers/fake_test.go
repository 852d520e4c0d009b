package competitionhandlers

import (
	"context"

	competitionservice "github.com/Black-And-White-Club/matchday/app/modules/competition/application"
)

// ------------------------
// Fake Competition Service
// ------------------------

type FakeCompetitionService struct {
	trace []string

	CreateCompetitionFunc      func(ctx context.Context, actor string, req competitionservice.CreateCompetitionRequest) (*competitionservice.CompetitionInfo, error)
	GetCompetitionFunc         func(ctx context.Context, competitionID int64) (*competitionservice.CompetitionInfo, error)
	ListForUserFunc            func(ctx context.Context, actor string) ([]*competitionservice.CompetitionInfo, error)
	ListCreatedByFunc          func(ctx context.Context, actor string) ([]*competitionservice.CompetitionInfo, error)
	AddParticipantsFunc        func(ctx context.Context, competitionID int64, userIDs []int64, actor string) (*competitionservice.CompetitionInfo, error)
	LeaveCompetitionFunc       func(ctx context.Context, competitionID int64, actor string) error
	DeleteCompetitionFunc      func(ctx context.Context, competitionID int64, actor string) error
	SelectableParticipantsFunc func(ctx context.Context, competitionID int64) ([]competitionservice.SelectableParticipant, error)
}

func NewFakeCompetitionService() *FakeCompetitionService {
	return &FakeCompetitionService{trace: []string{}}
}

func (f *FakeCompetitionService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCompetitionService) CreateCompetition(ctx context.Context, actor string, req competitionservice.CreateCompetitionRequest) (*competitionservice.CompetitionInfo, error) {
	f.record("CreateCompetition")
	if f.CreateCompetitionFunc != nil {
		return f.CreateCompetitionFunc(ctx, actor, req)
	}
	return &competitionservice.CompetitionInfo{}, nil
}

func (f *FakeCompetitionService) GetCompetition(ctx context.Context, competitionID int64) (*competitionservice.CompetitionInfo, error) {
	f.record("GetCompetition")
	if f.GetCompetitionFunc != nil {
		return f.GetCompetitionFunc(ctx, competitionID)
	}
	return &competitionservice.CompetitionInfo{ID: competitionID}, nil
}

func (f *FakeCompetitionService) ListForUser(ctx context.Context, actor string) ([]*competitionservice.CompetitionInfo, error) {
	f.record("ListForUser")
	if f.ListForUserFunc != nil {
		return f.ListForUserFunc(ctx, actor)
	}
	return nil, nil
}

func (f *FakeCompetitionService) ListCreatedBy(ctx context.Context, actor string) ([]*competitionservice.CompetitionInfo, error) {
	f.record("ListCreatedBy")
	if f.ListCreatedByFunc != nil {
		return f.ListCreatedByFunc(ctx, actor)
	}
	return nil, nil
}

func (f *FakeCompetitionService) AddParticipants(ctx context.Context, competitionID int64, userIDs []int64, actor string) (*competitionservice.CompetitionInfo, error) {
	f.record("AddParticipants")
	if f.AddParticipantsFunc != nil {
		return f.AddParticipantsFunc(ctx, competitionID, userIDs, actor)
	}
	return &competitionservice.CompetitionInfo{ID: competitionID}, nil
}

func (f *FakeCompetitionService) LeaveCompetition(ctx context.Context, competitionID int64, actor string) error {
	f.record("LeaveCompetition")
	if f.LeaveCompetitionFunc != nil {
		return f.LeaveCompetitionFunc(ctx, competitionID, actor)
	}
	return nil
}

func (f *FakeCompetitionService) DeleteCompetition(ctx context.Context, competitionID int64, actor string) error {
	f.record("DeleteCompetition")
	if f.DeleteCompetitionFunc != nil {
		return f.DeleteCompetitionFunc(ctx, competitionID, actor)
	}
	return nil
}

func (f *FakeCompetitionService) SelectableParticipants(ctx context.Context, competitionID int64) ([]competitionservice.SelectableParticipant, error) {
	f.record("SelectableParticipants")
	if f.SelectableParticipantsFunc != nil {
		return f.SelectableParticipantsFunc(ctx, competitionID)
	}
	return nil, nil
}

func (f *FakeCompetitionService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ competitionservice.Service = (*FakeCompetitionService)(nil)
