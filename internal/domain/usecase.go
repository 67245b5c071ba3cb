package domain

import (
	"context"
	"time"
)

// Transactor выполняет fn в одной транзакции хранилища. Репозитории,
// вызванные с переданным ctx, работают внутри этой транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DateParser разбирает дату регистрации в формате "dd/MM".
type DateParser interface {
	Parse(value string) (time.Time, error)
}

// TeamUseCase определяет бизнес-логику для работы с командами.
type TeamUseCase interface {
	RegisterTeams(ctx context.Context, registrations []TeamRegistration) (*ProcessingResult[*Team], error)
	GetTeam(ctx context.Context, teamName string) (*Team, error)
	DeleteTeam(ctx context.Context, teamName string) error
	UpdateTeam(ctx context.Context, op UpdateOperation, update TeamUpdate) (*Team, error)
}

// MatchUseCase определяет бизнес-логику обработки результатов матчей.
type MatchUseCase interface {
	SubmitMatches(ctx context.Context, proposals []MatchProposal) (*ProcessingResult[*Match], error)
	ListTeamMatches(ctx context.Context, teamName string) ([]*Match, error)
}

// StandingsUseCase определяет бизнес-логику турнирной таблицы.
type StandingsUseCase interface {
	RankGroup(ctx context.Context, groupNumber int) ([]*Team, error)
	Qualifies(ctx context.Context, teamName string, groupNumber int) (bool, error)
}
