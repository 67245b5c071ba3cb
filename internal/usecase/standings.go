package usecase

import (
	"context"
	"fmt"

	"football-championship/internal/domain"
)

// StandingsUseCase реализует построение турнирной таблицы группы.
type StandingsUseCase struct {
	teamRepo domain.TeamRepository
	audit    domain.AuditSink
}

// NewStandingsUseCase создает новый экземпляр StandingsUseCase.
func NewStandingsUseCase(teamRepo domain.TeamRepository, audit domain.AuditSink) domain.StandingsUseCase {
	return &StandingsUseCase{
		teamRepo: teamRepo,
		audit:    audit,
	}
}

// RankGroup возвращает команды группы в порядке турнирной таблицы.
func (uc *StandingsUseCase) RankGroup(ctx context.Context, groupNumber int) ([]*domain.Team, error) {
	teams, err := uc.teamRepo.FindByGroup(ctx, groupNumber)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, domain.ErrGroupNotFound
	}

	domain.SortStandings(teams)

	uc.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditGet,
		EntityName: domain.EntityTeam,
		Details:    fmt.Sprintf("Get ranking for teams in group %d", groupNumber),
	})

	return teams, nil
}

// Qualifies сообщает, входит ли команда в первые QualificationCutoff мест группы.
// Если команды нет в группе, возвращается false без ошибки.
func (uc *StandingsUseCase) Qualifies(ctx context.Context, teamName string, groupNumber int) (bool, error) {
	standings, err := uc.RankGroup(ctx, groupNumber)
	if err != nil {
		return false, err
	}

	return domain.IsQualified(domain.RankIndex(standings, teamName)), nil
}
