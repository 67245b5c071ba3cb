package dateparse_test

import (
	"testing"
	"time"

	"football-championship/internal/dateparse"
	"football-championship/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
}

func TestDayMonthParser_Parse_Success(t *testing.T) {
	p := dateparse.NewWithClock(fixedClock(2024))

	date, err := p.Parse("17/06")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC), date)
}

func TestDayMonthParser_Parse_LeapDayDependsOnCurrentYear(t *testing.T) {
	_, err := dateparse.NewWithClock(fixedClock(2024)).Parse("29/02")
	assert.NoError(t, err)

	_, err = dateparse.NewWithClock(fixedClock(2023)).Parse("29/02")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDayMonthParser_Parse_Invalid(t *testing.T) {
	p := dateparse.NewWithClock(fixedClock(2024))

	testCases := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Single digit day", input: "1/06"},
		{name: "Month out of range", input: "10/13"},
		{name: "Day out of range", input: "32/01"},
		{name: "Year included", input: "10/01/2024"},
		{name: "Wrong separator", input: "10-01"},
		{name: "Garbage", input: "tomorrow"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}
