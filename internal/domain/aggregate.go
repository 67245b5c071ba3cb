package domain

import "fmt"

// UpdateOperation выбирает политику слияния показателей команды.
type UpdateOperation int

const (
	// OperationAccumulate прибавляет переданные значения к текущим.
	OperationAccumulate UpdateOperation = iota
	// OperationReplace перезаписывает текущие значения переданными.
	OperationReplace
)

// Теги операций во внешнем API.
const (
	OperationTagUpdate = "UPDATE"
	OperationTagEdit   = "EDIT"
)

// ParseOperation переводит тег из запроса в UpdateOperation.
func ParseOperation(tag string) (UpdateOperation, error) {
	switch tag {
	case OperationTagUpdate:
		return OperationAccumulate, nil
	case OperationTagEdit:
		return OperationReplace, nil
	default:
		return 0, ErrUnknownOperation
	}
}

func (op UpdateOperation) String() string {
	switch op {
	case OperationAccumulate:
		return OperationTagUpdate
	case OperationReplace:
		return OperationTagEdit
	default:
		return fmt.Sprintf("UpdateOperation(%d)", int(op))
	}
}

// TeamDelta содержит изменения показателей; nil означает "не менять".
type TeamDelta struct {
	TotalGoals      *int
	MatchPoints     *int
	AlternatePoints *int
	MatchesPlayed   *int
}

// MatchDelta строит изменение показателей команды по итогам одного матча.
func MatchDelta(goals int, standard, alternate int) TeamDelta {
	played := 1
	return TeamDelta{
		TotalGoals:      &goals,
		MatchPoints:     &standard,
		AlternatePoints: &alternate,
		MatchesPlayed:   &played,
	}
}

// Validate проверяет, что все переданные значения лежат в [0, MaxStatValue].
func (d TeamDelta) Validate() error {
	for _, v := range []*int{d.TotalGoals, d.MatchPoints, d.AlternatePoints, d.MatchesPlayed} {
		if v == nil {
			continue
		}
		if *v < 0 {
			return ErrNegativeValue
		}
		if *v > MaxStatValue {
			return ErrValueTooLarge
		}
	}
	return nil
}

// CheckLimits проверяет, что показатели команды после слияния не вышли за MaxStatValue.
func (t Team) CheckLimits() error {
	for _, v := range []int{t.TotalGoals, t.MatchPoints, t.AlternatePoints, t.MatchesPlayed} {
		// Отрицательное значение здесь возможно только при переполнении int.
		if v < 0 || v > MaxStatValue {
			return ErrValueTooLarge
		}
	}
	return nil
}

// ApplyDelta возвращает копию команды с применённым изменением показателей.
func ApplyDelta(team Team, op UpdateOperation, delta TeamDelta) Team {
	var merge func(current int, v *int) int
	switch op {
	case OperationAccumulate:
		merge = func(current int, v *int) int {
			if v == nil {
				return current
			}
			return current + *v
		}
	case OperationReplace:
		merge = func(current int, v *int) int {
			if v == nil {
				return current
			}
			return *v
		}
	default:
		panic(fmt.Sprintf("domain: unknown update operation %d", int(op)))
	}

	team.TotalGoals = merge(team.TotalGoals, delta.TotalGoals)
	team.MatchPoints = merge(team.MatchPoints, delta.MatchPoints)
	team.AlternatePoints = merge(team.AlternatePoints, delta.AlternatePoints)
	team.MatchesPlayed = merge(team.MatchesPlayed, delta.MatchesPlayed)
	return team
}

// ApplyTeamUpdate применяет изменение реквизитов (перезапись при наличии)
// и показателей (по политике op). Уникальность имени проверяет вызывающий.
func ApplyTeamUpdate(team Team, op UpdateOperation, update TeamUpdate) Team {
	if update.NewName != nil {
		team.Name = *update.NewName
	}
	if update.NewRegistrationDate != nil {
		team.RegistrationDate = *update.NewRegistrationDate
	}
	if update.GroupNumber != nil {
		team.GroupNumber = *update.GroupNumber
	}
	return ApplyDelta(team, op, update.Delta)
}
