package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"football-championship/internal/domain"

	"github.com/google/uuid"
)

// MatchUseCase реализует обработку пакетов результатов матчей.
type MatchUseCase struct {
	teamRepo  domain.TeamRepository
	matchRepo domain.MatchRepository
	tx        domain.Transactor
	audit     domain.AuditSink
}

// NewMatchUseCase создает новый экземпляр MatchUseCase.
func NewMatchUseCase(
	teamRepo domain.TeamRepository,
	matchRepo domain.MatchRepository,
	tx domain.Transactor,
	audit domain.AuditSink,
) domain.MatchUseCase {
	return &MatchUseCase{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		tx:        tx,
		audit:     audit,
	}
}

// SubmitMatches обрабатывает пакет результатов. Весь пакет выполняется в одной
// транзакции: отказ по отдельному матчу попадает в Errors, ошибка хранилища
// откатывает пакет целиком.
func (uc *MatchUseCase) SubmitMatches(ctx context.Context, proposals []domain.MatchProposal) (*domain.ProcessingResult[*domain.Match], error) {
	result := domain.NewProcessingResult[*domain.Match](uuid.NewString(), len(proposals))

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, p := range proposals {
			match, err := uc.processProposal(ctx, p)
			if isRejection(err) {
				result.AddError(fmt.Sprintf("Error processing match result for %s and %s: %s", p.TeamA, p.TeamB, err))
				continue
			}
			if err != nil {
				return err
			}
			result.AddValid(match)
		}

		return uc.matchRepo.SaveAll(ctx, result.ValidData)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditInsert,
		EntityName: domain.EntityMatch,
		Details:    fmt.Sprintf("batch %s: %s", result.BatchID, describeMatches(result.ValidData)),
	})

	return result, nil
}

// processProposal проверяет один результат и начисляет показатели обеим командам.
func (uc *MatchUseCase) processProposal(ctx context.Context, p domain.MatchProposal) (*domain.Match, error) {
	if p.TeamA == p.TeamB {
		return nil, reject(domain.ErrSameTeamInMatch)
	}

	teamA, teamB, err := uc.lockPair(ctx, p.TeamA, p.TeamB)
	if err != nil {
		return nil, err
	}

	if p.GoalsA < 0 || p.GoalsB < 0 {
		return nil, reject(domain.ErrNegativeScore)
	}
	if p.GoalsA > domain.MaxStatValue || p.GoalsB > domain.MaxStatValue {
		return nil, reject(domain.ErrValueTooLarge)
	}

	standard := domain.ComputePoints(domain.SchemeStandard, p.GoalsA, p.GoalsB)
	alternate := domain.ComputePoints(domain.SchemeAlternate, p.GoalsA, p.GoalsB)

	updatedA := domain.ApplyDelta(*teamA, domain.OperationAccumulate,
		domain.MatchDelta(p.GoalsA, standard.PointsA, alternate.PointsA))
	updatedB := domain.ApplyDelta(*teamB, domain.OperationAccumulate,
		domain.MatchDelta(p.GoalsB, standard.PointsB, alternate.PointsB))
	for _, t := range []domain.Team{updatedA, updatedB} {
		if err := t.CheckLimits(); err != nil {
			return nil, reject(fmt.Errorf("%w: %s", err, t.Name))
		}
	}

	// Обе команды пишутся одним вызовом: либо обе, либо ни одна.
	if err := uc.teamRepo.SaveAll(ctx, []*domain.Team{&updatedA, &updatedB}); err != nil {
		return nil, fmt.Errorf("failed to update teams %s and %s: %w", p.TeamA, p.TeamB, err)
	}

	return &domain.Match{
		TeamA:  p.TeamA,
		TeamB:  p.TeamB,
		GoalsA: p.GoalsA,
		GoalsB: p.GoalsB,
	}, nil
}

// lockPair блокирует обе команды в порядке имён, чтобы параллельные пакеты
// не блокировали друг друга крест-накрест.
func (uc *MatchUseCase) lockPair(ctx context.Context, nameA, nameB string) (*domain.Team, *domain.Team, error) {
	first, second := nameA, nameB
	if second < first {
		first, second = second, first
	}

	teams := make(map[string]*domain.Team, 2)
	for _, name := range []string{first, second} {
		team, err := uc.teamRepo.LockByName(ctx, name)
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, nil, reject(fmt.Errorf("%w: %s", domain.ErrTeamNotFound, name))
		}
		if err != nil {
			return nil, nil, err
		}
		teams[name] = team
	}

	return teams[nameA], teams[nameB], nil
}

// ListTeamMatches возвращает историю матчей команды.
func (uc *MatchUseCase) ListTeamMatches(ctx context.Context, teamName string) ([]*domain.Match, error) {
	exists, err := uc.teamRepo.ExistsTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	return uc.matchRepo.ListByTeam(ctx, teamName)
}

func describeMatches(matches []*domain.Match) string {
	if len(matches) == 0 {
		return "no matches added"
	}
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("Adding match result for %s and %s", m.TeamA, m.TeamB)
	}
	return strings.Join(parts, ", ")
}
