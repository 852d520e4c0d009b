package matchhandlers

import (
	"context"

	matchservice "github.com/Black-And-White-Club/matchday/app/modules/match/application"
)

// ------------------------
// Fake Match Service
// ------------------------

type FakeMatchService struct {
	trace []string

	CreateMatchFunc  func(ctx context.Context, actor string, req matchservice.CreateMatchRequest) (*matchservice.MatchInfo, error)
	GetMatchFunc     func(ctx context.Context, matchID int64) (*matchservice.MatchInfo, error)
	ListMatchesFunc  func(ctx context.Context, competitionID int64) ([]*matchservice.MatchInfo, error)
	StartMatchFunc   func(ctx context.Context, matchID int64, actor string) (*matchservice.MatchInfo, error)
	SubmitScoresFunc func(ctx context.Context, matchID int64, actor string, scores map[int64]int) (*matchservice.MatchInfo, error)
	DeleteMatchFunc  func(ctx context.Context, matchID int64, actor string) error
}

func NewFakeMatchService() *FakeMatchService {
	return &FakeMatchService{trace: []string{}}
}

func (f *FakeMatchService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeMatchService) CreateMatch(ctx context.Context, actor string, req matchservice.CreateMatchRequest) (*matchservice.MatchInfo, error) {
	f.record("CreateMatch")
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, actor, req)
	}
	return &matchservice.MatchInfo{}, nil
}

func (f *FakeMatchService) GetMatch(ctx context.Context, matchID int64) (*matchservice.MatchInfo, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, matchID)
	}
	return &matchservice.MatchInfo{ID: matchID}, nil
}

func (f *FakeMatchService) ListMatches(ctx context.Context, competitionID int64) ([]*matchservice.MatchInfo, error) {
	f.record("ListMatches")
	if f.ListMatchesFunc != nil {
		return f.ListMatchesFunc(ctx, competitionID)
	}
	return nil, nil
}

func (f *FakeMatchService) StartMatch(ctx context.Context, matchID int64, actor string) (*matchservice.MatchInfo, error) {
	f.record("StartMatch")
	if f.StartMatchFunc != nil {
		return f.StartMatchFunc(ctx, matchID, actor)
	}
	return &matchservice.MatchInfo{ID: matchID}, nil
}

func (f *FakeMatchService) SubmitScores(ctx context.Context, matchID int64, actor string, scores map[int64]int) (*matchservice.MatchInfo, error) {
	f.record("SubmitScores")
	if f.SubmitScoresFunc != nil {
		return f.SubmitScoresFunc(ctx, matchID, actor, scores)
	}
	return &matchservice.MatchInfo{ID: matchID}, nil
}

func (f *FakeMatchService) DeleteMatch(ctx context.Context, matchID int64, actor string) error {
	f.record("DeleteMatch")
	if f.DeleteMatchFunc != nil {
		return f.DeleteMatchFunc(ctx, matchID, actor)
	}
	return nil
}

func (f *FakeMatchService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ matchservice.Service = (*FakeMatchService)(nil)
