package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"football-championship/internal/domain"

	"github.com/google/uuid"
)

// TeamUseCase реализует бизнес-логику для работы с командами.
type TeamUseCase struct {
	teamRepo domain.TeamRepository
	tx       domain.Transactor
	audit    domain.AuditSink
	dates    domain.DateParser
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(
	teamRepo domain.TeamRepository,
	tx domain.Transactor,
	audit domain.AuditSink,
	dates domain.DateParser,
) domain.TeamUseCase {
	return &TeamUseCase{
		teamRepo: teamRepo,
		tx:       tx,
		audit:    audit,
		dates:    dates,
	}
}

// RegisterTeams регистрирует пакет команд. Ошибки отдельных заявок
// попадают в результат и не мешают остальным.
func (uc *TeamUseCase) RegisterTeams(ctx context.Context, registrations []domain.TeamRegistration) (*domain.ProcessingResult[*domain.Team], error) {
	result := domain.NewProcessingResult[*domain.Team](uuid.NewString(), len(registrations))

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		seen := make(map[string]struct{}, len(registrations))

		for _, reg := range registrations {
			team, err := uc.validateRegistration(ctx, reg, seen)
			if isRejection(err) {
				result.AddError(fmt.Sprintf("Error processing team for %s: %s", reg.Name, err))
				continue
			}
			if err != nil {
				return err
			}
			seen[team.Name] = struct{}{}
			result.AddValid(team)
		}

		return uc.teamRepo.SaveAll(ctx, result.ValidData)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditInsert,
		EntityName: domain.EntityTeam,
		Details:    fmt.Sprintf("batch %s: %s", result.BatchID, describeTeams(result.ValidData)),
	})

	return result, nil
}

// validateRegistration возвращает команду к сохранению либо отказ (reject).
func (uc *TeamUseCase) validateRegistration(ctx context.Context, reg domain.TeamRegistration, seen map[string]struct{}) (*domain.Team, error) {
	if err := domain.ValidateTeamName(reg.Name); err != nil {
		return nil, reject(err)
	}

	date, err := uc.dates.Parse(reg.RegistrationDate)
	if err != nil {
		return nil, reject(err)
	}

	if _, dup := seen[reg.Name]; dup {
		return nil, reject(domain.ErrTeamAlreadyExists)
	}
	exists, err := uc.teamRepo.ExistsTeam(ctx, reg.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, reject(domain.ErrTeamAlreadyExists)
	}

	if !domain.ValidGroupNumber(reg.GroupNumber) {
		return nil, reject(domain.ErrInvalidGroupNumber)
	}

	return &domain.Team{
		Name:             reg.Name,
		RegistrationDate: date,
		GroupNumber:      reg.GroupNumber,
	}, nil
}

// GetTeam возвращает команду по названию.
func (uc *TeamUseCase) GetTeam(ctx context.Context, teamName string) (*domain.Team, error) {
	team, err := uc.teamRepo.FindByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditGet,
		EntityName: domain.EntityTeam,
		Details:    team.Name,
	})

	return team, nil
}

// DeleteTeam удаляет команду. Сыгранные матчи остаются как есть.
func (uc *TeamUseCase) DeleteTeam(ctx context.Context, teamName string) error {
	if err := uc.teamRepo.DeleteByName(ctx, teamName); err != nil {
		return err
	}

	uc.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditDelete,
		EntityName: domain.EntityTeam,
		Details:    teamName,
	})

	return nil
}

// UpdateTeam изменяет реквизиты и показатели команды по политике op.
func (uc *TeamUseCase) UpdateTeam(ctx context.Context, op domain.UpdateOperation, update domain.TeamUpdate) (*domain.Team, error) {
	if err := update.Delta.Validate(); err != nil {
		return nil, err
	}
	if update.NewName != nil {
		if err := domain.ValidateTeamName(*update.NewName); err != nil {
			return nil, err
		}
	}
	if update.GroupNumber != nil && !domain.ValidGroupNumber(*update.GroupNumber) {
		return nil, domain.ErrInvalidGroupNumber
	}

	var updated *domain.Team
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := uc.teamRepo.LockByName(ctx, update.TeamName)
		if err != nil {
			return err
		}

		// Переименование в своё же имя конфликтом не считается.
		if update.NewName != nil && *update.NewName != team.Name {
			taken, err := uc.teamRepo.ExistsTeam(ctx, *update.NewName)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrTeamNameTaken
			}
		}

		next := domain.ApplyTeamUpdate(*team, op, update)
		if err := next.CheckLimits(); err != nil {
			return err
		}
		updated, err = uc.teamRepo.Save(ctx, &next)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrTeamAlreadyExists) {
			return nil, domain.ErrTeamNameTaken
		}
		return nil, err
	}

	uc.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionFor(op),
		EntityName: domain.EntityTeam,
		Details:    updated.Name,
	})

	return updated, nil
}

func describeTeams(teams []*domain.Team) string {
	if len(teams) == 0 {
		return "no teams added"
	}
	parts := make([]string, len(teams))
	for i, t := range teams {
		parts[i] = "Adding team: " + t.Name
	}
	return strings.Join(parts, ", ")
}
