package domain

import (
	"context"
	"time"
)

// Match представляет зафиксированный результат матча. После создания не изменяется.
type Match struct {
	ID        int64
	TeamA     string
	TeamB     string
	GoalsA    int
	GoalsB    int
	CreatedAt time.Time
}

// MatchProposal описывает один результат матча, присланный в пакете.
type MatchProposal struct {
	TeamA  string
	TeamB  string
	GoalsA int
	GoalsB int
}

// MatchRepository определяет контракт для работы с хранилищем матчей.
type MatchRepository interface {
	SaveAll(ctx context.Context, matches []*Match) error
	ListByTeam(ctx context.Context, teamName string) ([]*Match, error)
}
