package domain

import (
	"cmp"
	"slices"
)

// QualificationCutoff: сколько первых мест группы проходят дальше.
const QualificationCutoff = 4

// CompareTeams задаёт порядок в турнирной таблице: очки, забитые голы,
// альтернативные очки (всё по убыванию), затем более ранняя дата регистрации.
func CompareTeams(a, b *Team) int {
	if c := cmp.Compare(b.MatchPoints, a.MatchPoints); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TotalGoals, a.TotalGoals); c != 0 {
		return c
	}
	if c := cmp.Compare(b.AlternatePoints, a.AlternatePoints); c != 0 {
		return c
	}
	return a.RegistrationDate.Compare(b.RegistrationDate)
}

// SortStandings устойчиво сортирует команды по CompareTeams на месте.
func SortStandings(teams []*Team) {
	slices.SortStableFunc(teams, CompareTeams)
}

// RankIndex возвращает позицию команды в отсортированной таблице или -1.
func RankIndex(standings []*Team, teamName string) int {
	return slices.IndexFunc(standings, func(t *Team) bool {
		return t.Name == teamName
	})
}

// IsQualified сообщает, попадает ли позиция в зону выхода из группы.
func IsQualified(rank int) bool {
	return rank >= 0 && rank < QualificationCutoff
}
