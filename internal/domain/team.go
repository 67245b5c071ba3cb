package domain

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Допустимые номера групп турнира.
const (
	GroupOne = 1
	GroupTwo = 2
)

// Ограничения хранилища: имя до 100 символов, показатели и голы в int4.
const (
	MaxTeamNameLength = 100
	MaxStatValue      = math.MaxInt32
)

// Team представляет команду и её накопленные показатели в групповом этапе.
type Team struct {
	ID               int64
	Name             string
	RegistrationDate time.Time
	GroupNumber      int
	TotalGoals       int
	MatchPoints      int
	AlternatePoints  int
	MatchesPlayed    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TeamRegistration описывает заявку на регистрацию команды.
type TeamRegistration struct {
	Name             string
	RegistrationDate string
	GroupNumber      int
}

// TeamUpdate описывает изменение команды: реквизиты и показатели.
type TeamUpdate struct {
	TeamName            string
	NewName             *string
	NewRegistrationDate *time.Time
	GroupNumber         *int
	Delta               TeamDelta
}

// ValidGroupNumber проверяет, что номер группы входит в {1, 2}.
func ValidGroupNumber(n int) bool {
	return n == GroupOne || n == GroupTwo
}

// ValidateTeamName проверяет, что имя непустое и помещается в хранилище.
func ValidateTeamName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidTeamName
	}
	if utf8.RuneCountInString(name) > MaxTeamNameLength {
		return ErrTeamNameTooLong
	}
	return nil
}

// TeamRepository определяет контракт для работы с хранилищем команд.
type TeamRepository interface {
	FindByName(ctx context.Context, name string) (*Team, error)
	// LockByName читает команду с блокировкой строки до конца транзакции.
	LockByName(ctx context.Context, name string) (*Team, error)
	FindByGroup(ctx context.Context, groupNumber int) ([]*Team, error)
	ExistsTeam(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, team *Team) (*Team, error)
	SaveAll(ctx context.Context, teams []*Team) error
	DeleteByName(ctx context.Context, name string) error
}
