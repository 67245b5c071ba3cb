package repository

import (
	"context"
	"database/sql"
	"fmt"

	"football-championship/internal/database"
	"football-championship/internal/domain"
)

// MatchRepository реализует взаимодействие с данными матчей в PostgreSQL.
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository создает новый экземпляр MatchRepository.
func NewMatchRepository(db *sql.DB) domain.MatchRepository {
	return &MatchRepository{
		db: db,
	}
}

// SaveAll вставляет пакет матчей одной транзакцией и проставляет им ID.
func (r *MatchRepository) SaveAll(ctx context.Context, matches []*domain.Match) error {
	if len(matches) == 0 {
		return nil
	}

	return database.NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		stmt, err := database.Executor(ctx, r.db).PrepareContext(ctx, `
			INSERT INTO matches (team_a_name, team_b_name, team_a_goals, team_b_goals)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`)
		if err != nil {
			return fmt.Errorf("failed to prepare match insert: %w", err)
		}
		defer stmt.Close()

		for _, m := range matches {
			err := stmt.QueryRowContext(ctx, m.TeamA, m.TeamB, m.GoalsA, m.GoalsB).
				Scan(&m.ID, &m.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert match %s vs %s: %w", m.TeamA, m.TeamB, err)
			}
		}
		return nil
	})
}

// ListByTeam возвращает матчи с участием команды в порядке добавления.
func (r *MatchRepository) ListByTeam(ctx context.Context, teamName string) ([]*domain.Match, error) {
	rows, err := database.Executor(ctx, r.db).QueryContext(ctx, `
		SELECT id, team_a_name, team_b_name, team_a_goals, team_b_goals, created_at
		FROM matches
		WHERE team_a_name = $1 OR team_b_name = $1
		ORDER BY id`, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get team matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*domain.Match, 0)
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.ID, &m.TeamA, &m.TeamB, &m.GoalsA, &m.GoalsB, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}
