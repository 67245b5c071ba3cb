package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"football-championship/internal/database"
	"football-championship/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const teamColumns = `id, name, registration_date, group_number, total_goals,
	match_points, alternate_points, matches_played, created_at, updated_at`

// TeamRepository реализует взаимодействие с данными команд в PostgreSQL.
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(
		&t.ID, &t.Name, &t.RegistrationDate, &t.GroupNumber, &t.TotalGoals,
		&t.MatchPoints, &t.AlternatePoints, &t.MatchesPlayed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByName возвращает команду по названию.
func (r *TeamRepository) FindByName(ctx context.Context, name string) (*domain.Team, error) {
	return r.findOne(ctx, `SELECT `+teamColumns+` FROM teams WHERE name = $1`, name)
}

// LockByName возвращает команду по названию и блокирует строку до конца транзакции.
func (r *TeamRepository) LockByName(ctx context.Context, name string) (*domain.Team, error) {
	return r.findOne(ctx, `SELECT `+teamColumns+` FROM teams WHERE name = $1 FOR UPDATE`, name)
}

func (r *TeamRepository) findOne(ctx context.Context, query, name string) (*domain.Team, error) {
	row := database.Executor(ctx, r.db).QueryRowContext(ctx, query, name)
	team, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// FindByGroup возвращает все команды группы в порядке регистрации.
func (r *TeamRepository) FindByGroup(ctx context.Context, groupNumber int) ([]*domain.Team, error) {
	rows, err := database.Executor(ctx, r.db).QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE group_number = $1 ORDER BY id`, groupNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by group: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// ExistsTeam проверяет существование команды.
func (r *TeamRepository) ExistsTeam(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := database.Executor(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM teams WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

// Save создает команду (ID == 0) или обновляет существующую по ID.
func (r *TeamRepository) Save(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	exec := database.Executor(ctx, r.db)

	if team.ID == 0 {
		err := exec.QueryRowContext(ctx, `
			INSERT INTO teams (name, registration_date, group_number, total_goals,
				match_points, alternate_points, matches_played)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`,
			team.Name, team.RegistrationDate, team.GroupNumber, team.TotalGoals,
			team.MatchPoints, team.AlternatePoints, team.MatchesPlayed,
		).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrTeamAlreadyExists
			}
			return nil, fmt.Errorf("failed to create team %s: %w", team.Name, err)
		}
		return team, nil
	}

	err := exec.QueryRowContext(ctx, `
		UPDATE teams SET
			name = $2, registration_date = $3, group_number = $4, total_goals = $5,
			match_points = $6, alternate_points = $7, matches_played = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		team.ID, team.Name, team.RegistrationDate, team.GroupNumber, team.TotalGoals,
		team.MatchPoints, team.AlternatePoints, team.MatchesPlayed,
	).Scan(&team.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrTeamNameTaken
		}
		return nil, fmt.Errorf("failed to update team %s: %w", team.Name, err)
	}

	return team, nil
}

// SaveAll сохраняет команды одной транзакцией (или в транзакции из ctx).
func (r *TeamRepository) SaveAll(ctx context.Context, teams []*domain.Team) error {
	if len(teams) == 0 {
		return nil
	}

	return database.NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		for _, team := range teams {
			if _, err := r.Save(ctx, team); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByName удаляет команду по названию.
func (r *TeamRepository) DeleteByName(ctx context.Context, name string) error {
	res, err := database.Executor(ctx, r.db).ExecContext(ctx, `DELETE FROM teams WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if affected == 0 {
		return domain.ErrTeamNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
