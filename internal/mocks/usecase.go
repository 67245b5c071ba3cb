package mocks

import (
	"context"

	"football-championship/internal/domain"

	"github.com/stretchr/testify/mock"
)

type TeamUseCase struct {
	mock.Mock
}

func (m *TeamUseCase) RegisterTeams(ctx context.Context, registrations []domain.TeamRegistration) (*domain.ProcessingResult[*domain.Team], error) {
	args := m.Called(ctx, registrations)
	if v := args.Get(0); v != nil {
		return v.(*domain.ProcessingResult[*domain.Team]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamUseCase) GetTeam(ctx context.Context, teamName string) (*domain.Team, error) {
	args := m.Called(ctx, teamName)
	if v := args.Get(0); v != nil {
		return v.(*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamUseCase) DeleteTeam(ctx context.Context, teamName string) error {
	args := m.Called(ctx, teamName)
	return args.Error(0)
}

func (m *TeamUseCase) UpdateTeam(ctx context.Context, op domain.UpdateOperation, update domain.TeamUpdate) (*domain.Team, error) {
	args := m.Called(ctx, op, update)
	if v := args.Get(0); v != nil {
		return v.(*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

type MatchUseCase struct {
	mock.Mock
}

func (m *MatchUseCase) SubmitMatches(ctx context.Context, proposals []domain.MatchProposal) (*domain.ProcessingResult[*domain.Match], error) {
	args := m.Called(ctx, proposals)
	if v := args.Get(0); v != nil {
		return v.(*domain.ProcessingResult[*domain.Match]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MatchUseCase) ListTeamMatches(ctx context.Context, teamName string) ([]*domain.Match, error) {
	args := m.Called(ctx, teamName)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

type StandingsUseCase struct {
	mock.Mock
}

func (m *StandingsUseCase) RankGroup(ctx context.Context, groupNumber int) ([]*domain.Team, error) {
	args := m.Called(ctx, groupNumber)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StandingsUseCase) Qualifies(ctx context.Context, teamName string, groupNumber int) (bool, error) {
	args := m.Called(ctx, teamName, groupNumber)
	return args.Bool(0), args.Error(1)
}
