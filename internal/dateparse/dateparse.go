// Package dateparse разбирает даты регистрации команд вида "dd/MM".
//
// Год во входных данных не передается: подставляется текущий год по часам
// парсера. Дата "31/12", присланная в январе, окажется в будущем.
package dateparse

import (
	"fmt"
	"time"

	"football-championship/internal/domain"
)

const layout = "02/01/2006"

// DayMonthParser реализует domain.DateParser.
type DayMonthParser struct {
	now func() time.Time
}

// New создает парсер, использующий системные часы.
func New() *DayMonthParser {
	return &DayMonthParser{now: time.Now}
}

// NewWithClock создает парсер с заданным источником текущего времени.
func NewWithClock(now func() time.Time) *DayMonthParser {
	return &DayMonthParser{now: now}
}

// Parse возвращает дату в UTC с текущим годом.
func (p *DayMonthParser) Parse(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is empty", domain.ErrInvalidDate)
	}

	full := fmt.Sprintf("%s/%d", value, p.now().Year())
	date, err := time.ParseInLocation(layout, full, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w. Provided: %s", domain.ErrInvalidDate, value)
	}

	return date, nil
}
