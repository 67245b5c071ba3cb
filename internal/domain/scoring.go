package domain

import "fmt"

// Scheme задаёт систему начисления очков за матч.
type Scheme int

const (
	// SchemeStandard: победа 3/0, ничья 1/1.
	SchemeStandard Scheme = iota
	// SchemeAlternate: победа 5/1, ничья 3/3.
	SchemeAlternate
)

func (s Scheme) String() string {
	switch s {
	case SchemeStandard:
		return "STANDARD"
	case SchemeAlternate:
		return "ALTERNATE"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ScoreOutcome содержит очки обеих команд по одной системе.
type ScoreOutcome struct {
	PointsA int
	PointsB int
}

type schemeTable struct {
	win, loss, draw int
}

func (s Scheme) table() schemeTable {
	switch s {
	case SchemeStandard:
		return schemeTable{win: 3, loss: 0, draw: 1}
	case SchemeAlternate:
		return schemeTable{win: 5, loss: 1, draw: 3}
	default:
		panic(fmt.Sprintf("domain: unknown scoring scheme %d", int(s)))
	}
}

// ComputePoints возвращает очки команд A и B за матч со счётом goalsA:goalsB.
// Для неизвестной системы функция паникует.
func ComputePoints(scheme Scheme, goalsA, goalsB int) ScoreOutcome {
	t := scheme.table()
	switch {
	case goalsA > goalsB:
		return ScoreOutcome{PointsA: t.win, PointsB: t.loss}
	case goalsA < goalsB:
		return ScoreOutcome{PointsA: t.loss, PointsB: t.win}
	default:
		return ScoreOutcome{PointsA: t.draw, PointsB: t.draw}
	}
}
