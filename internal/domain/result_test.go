package domain_test

import (
	"errors"
	"testing"

	"football-championship/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestProcessingResult(t *testing.T) {
	r := domain.NewProcessingResult[string]("batch-1", 3)

	assert.Equal(t, "batch-1", r.BatchID)
	assert.NotNil(t, r.ValidData)
	assert.NotNil(t, r.Errors)
	assert.Equal(t, 0, r.Total())

	r.AddValid("a")
	r.AddError("bad b")
	r.AddValid("c")

	assert.Equal(t, []string{"a", "c"}, r.ValidData)
	assert.Equal(t, []string{"bad b"}, r.Errors)
	assert.Equal(t, 3, r.Total())
}

func TestToHTTPError(t *testing.T) {
	httpErr, ok := domain.ToHTTPError(domain.ErrTeamNotFound)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)

	wrapped := errors.Join(errors.New("context"), domain.ErrTeamNameTaken)
	httpErr, ok = domain.ToHTTPError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "TEAM_NAME_TAKEN", httpErr.Code)

	_, ok = domain.ToHTTPError(errors.New("boom"))
	assert.False(t, ok)
}

func TestToHTTPError_FirstMatchWins(t *testing.T) {
	both := errors.Join(domain.ErrTeamNameTaken, domain.ErrTeamNotFound)

	for i := 0; i < 20; i++ {
		httpErr, ok := domain.ToHTTPError(both)
		assert.True(t, ok)
		assert.Equal(t, "NOT_FOUND", httpErr.Code)
	}

	httpErr, ok := domain.ToHTTPError(domain.ErrValueTooLarge)
	assert.True(t, ok)
	assert.Equal(t, "VALUE_TOO_LARGE", httpErr.Code)
}
