package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"football-championship/internal/domain"
	"football-championship/internal/mocks"
	"football-championship/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var regDate = time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC)

func TestTeamUseCase_RegisterTeams_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	dates := &mocks.DateParser{}
	audit := &mocks.AuditSink{}
	tx := &mocks.Transactor{}
	uc := usecase.NewTeamUseCase(teamRepo, tx, audit, dates)

	// Mock expectations
	dates.On("Parse", "17/03").Return(regDate, nil)
	teamRepo.On("ExistsTeam", ctx, "Lions").Return(false, nil)
	teamRepo.On("ExistsTeam", ctx, "Tigers").Return(false, nil)
	teamRepo.On("SaveAll", ctx, mock.MatchedBy(func(teams []*domain.Team) bool {
		return len(teams) == 2 && teams[0].Name == "Lions" && teams[1].Name == "Tigers"
	})).Return(nil)

	// Execute
	result, err := uc.RegisterTeams(ctx, []domain.TeamRegistration{
		{Name: "Lions", RegistrationDate: "17/03", GroupNumber: 1},
		{Name: "Tigers", RegistrationDate: "17/03", GroupNumber: 2},
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	require.Len(t, result.ValidData, 2)
	assert.Equal(t, regDate, result.ValidData[0].RegistrationDate)
	assert.Equal(t, 2, result.ValidData[1].GroupNumber)
	assert.Equal(t, 0, result.ValidData[0].MatchPoints)
	assert.Equal(t, 1, tx.Calls)

	require.Len(t, audit.Entries, 1)
	assert.Equal(t, domain.AuditInsert, audit.Entries[0].Action)
	assert.Equal(t, fmt.Sprintf("batch %s: Adding team: Lions, Adding team: Tigers", result.BatchID), audit.Entries[0].Details)

	teamRepo.AssertExpectations(t)
	dates.AssertExpectations(t)
}

func TestTeamUseCase_RegisterTeams_PartialFailure(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	dates := &mocks.DateParser{}
	uc := usecase.NewTeamUseCase(teamRepo, &mocks.Transactor{}, &mocks.AuditSink{}, dates)

	dates.On("Parse", "17/03").Return(regDate, nil)
	dates.On("Parse", "99/99").Return(time.Time{}, fmt.Errorf("%w. Provided: 99/99", domain.ErrInvalidDate))
	teamRepo.On("ExistsTeam", ctx, "Lions").Return(false, nil)
	teamRepo.On("ExistsTeam", ctx, "Old").Return(true, nil)
	teamRepo.On("ExistsTeam", ctx, "Grouped").Return(false, nil)
	teamRepo.On("SaveAll", ctx, mock.MatchedBy(func(teams []*domain.Team) bool {
		return len(teams) == 1 && teams[0].Name == "Lions"
	})).Return(nil)

	registrations := []domain.TeamRegistration{
		{Name: "Lions", RegistrationDate: "17/03", GroupNumber: 1},
		{Name: "", RegistrationDate: "17/03", GroupNumber: 1},
		{Name: "BadDate", RegistrationDate: "99/99", GroupNumber: 1},
		{Name: "Lions", RegistrationDate: "17/03", GroupNumber: 2},
		{Name: "Old", RegistrationDate: "17/03", GroupNumber: 1},
		{Name: "Grouped", RegistrationDate: "17/03", GroupNumber: 3},
	}

	result, err := uc.RegisterTeams(ctx, registrations)

	require.NoError(t, err)
	assert.Equal(t, len(registrations), result.Total())
	assert.Len(t, result.ValidData, 1)
	require.Len(t, result.Errors, 5)
	assert.Equal(t, "Error processing team for : invalid team name", result.Errors[0])
	assert.Contains(t, result.Errors[1], "invalid date format")
	assert.Equal(t, "Error processing team for Lions: team name already exists", result.Errors[2])
	assert.Equal(t, "Error processing team for Old: team name already exists", result.Errors[3])
	assert.Equal(t, "Error processing team for Grouped: group number should either be 1 or 2", result.Errors[4])

	teamRepo.AssertExpectations(t)
}

func TestTeamUseCase_RegisterTeams_StorageError(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	dates := &mocks.DateParser{}
	audit := &mocks.AuditSink{}
	uc := usecase.NewTeamUseCase(teamRepo, &mocks.Transactor{}, audit, dates)

	dates.On("Parse", "17/03").Return(regDate, nil)
	teamRepo.On("ExistsTeam", ctx, "Lions").Return(false, errStorage)

	result, err := uc.RegisterTeams(ctx, []domain.TeamRegistration{
		{Name: "Lions", RegistrationDate: "17/03", GroupNumber: 1},
	})

	assert.ErrorIs(t, err, errStorage)
	assert.Nil(t, result)
	assert.Empty(t, audit.Entries)
}

func TestTeamUseCase_GetTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	audit := &mocks.AuditSink{}
	uc := usecase.NewTeamUseCase(teamRepo, &mocks.Transactor{}, audit, &mocks.DateParser{})

	team := &domain.Team{ID: 1, Name: "Lions", GroupNumber: 1}
	teamRepo.On("FindByName", ctx, "Lions").Return(team, nil)
	teamRepo.On("FindByName", ctx, "Ghosts").Return(nil, domain.ErrTeamNotFound)

	got, err := uc.GetTeam(ctx, "Lions")
	require.NoError(t, err)
	assert.Equal(t, team, got)
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, domain.AuditGet, audit.Entries[0].Action)

	got, err = uc.GetTeam(ctx, "Ghosts")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	assert.Nil(t, got)
	assert.Len(t, audit.Entries, 1)
}

func TestTeamUseCase_DeleteTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	audit := &mocks.AuditSink{}
	uc := usecase.NewTeamUseCase(teamRepo, &mocks.Transactor{}, audit, &mocks.DateParser{})

	teamRepo.On("DeleteByName", ctx, "Lions").Return(nil)
	teamRepo.On("DeleteByName", ctx, "Ghosts").Return(domain.ErrTeamNotFound)

	require.NoError(t, uc.DeleteTeam(ctx, "Lions"))
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, domain.AuditDelete, audit.Entries[0].Action)
	assert.Equal(t, "Lions", audit.Entries[0].Details)

	assert.ErrorIs(t, uc.DeleteTeam(ctx, "Ghosts"), domain.ErrTeamNotFound)
	assert.Len(t, audit.Entries, 1)
}

func TestTeamUseCase_UpdateTeam_Accumulate(t *testing.T) {
	ctx := context.Background()
	teams := newMemTeamRepo(domain.Team{Name: "Lions", GroupNumber: 1, TotalGoals: 5, MatchPoints: 3})
	audit := &mocks.AuditSink{}
	uc := usecase.NewTeamUseCase(teams, &mocks.Transactor{}, audit, &mocks.DateParser{})

	goals := 3
	updated, err := uc.UpdateTeam(ctx, domain.OperationAccumulate, domain.TeamUpdate{
		TeamName: "Lions",
		Delta:    domain.TeamDelta{TotalGoals: &goals},
	})

	require.NoError(t, err)
	assert.Equal(t, 8, updated.TotalGoals)
	assert.Equal(t, 3, updated.MatchPoints)
	assert.Equal(t, 8, teams.get("Lions").TotalGoals)
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, domain.AuditUpdate, audit.Entries[0].Action)
}

func TestTeamUseCase_UpdateTeam_ReplaceAndRename(t *testing.T) {
	ctx := context.Background()
	teams := newMemTeamRepo(domain.Team{Name: "Lions", GroupNumber: 1, TotalGoals: 5})
	audit := &mocks.AuditSink{}
	uc := usecase.NewTeamUseCase(teams, &mocks.Transactor{}, audit, &mocks.DateParser{})

	goals := 3
	newName := "Tigers"
	group := 2
	updated, err := uc.UpdateTeam(ctx, domain.OperationReplace, domain.TeamUpdate{
		TeamName:    "Lions",
		NewName:     &newName,
		GroupNumber: &group,
		Delta:       domain.TeamDelta{TotalGoals: &goals},
	})

	require.NoError(t, err)
	assert.Equal(t, "Tigers", updated.Name)
	assert.Equal(t, 3, updated.TotalGoals)
	assert.Equal(t, 2, updated.GroupNumber)

	exists, _ := teams.ExistsTeam(ctx, "Lions")
	assert.False(t, exists)
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, domain.AuditEdit, audit.Entries[0].Action)
	assert.Equal(t, "Tigers", audit.Entries[0].Details)
}

func TestTeamUseCase_UpdateTeam_RenameToSelf(t *testing.T) {
	ctx := context.Background()
	teams := newMemTeamRepo(domain.Team{Name: "Lions", GroupNumber: 1})
	uc := usecase.NewTeamUseCase(teams, &mocks.Transactor{}, &mocks.AuditSink{}, &mocks.DateParser{})

	same := "Lions"
	updated, err := uc.UpdateTeam(ctx, domain.OperationReplace, domain.TeamUpdate{
		TeamName: "Lions",
		NewName:  &same,
	})

	require.NoError(t, err)
	assert.Equal(t, "Lions", updated.Name)
}

func TestTeamUseCase_UpdateTeam_NameTaken(t *testing.T) {
	ctx := context.Background()
	teams := newMemTeamRepo(
		domain.Team{Name: "Lions", GroupNumber: 1, TotalGoals: 5},
		domain.Team{Name: "Tigers", GroupNumber: 1},
	)
	audit := &mocks.AuditSink{}
	uc := usecase.NewTeamUseCase(teams, &mocks.Transactor{}, audit, &mocks.DateParser{})

	taken := "Tigers"
	goals := 1
	updated, err := uc.UpdateTeam(ctx, domain.OperationAccumulate, domain.TeamUpdate{
		TeamName: "Lions",
		NewName:  &taken,
		Delta:    domain.TeamDelta{TotalGoals: &goals},
	})

	assert.ErrorIs(t, err, domain.ErrTeamNameTaken)
	assert.Nil(t, updated)
	assert.Equal(t, 5, teams.get("Lions").TotalGoals)
	assert.Equal(t, 0, teams.saves)
	assert.Empty(t, audit.Entries)
}

func TestTeamUseCase_UpdateTeam_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	teams := newMemTeamRepo(domain.Team{Name: "Lions", GroupNumber: 1})
	uc := usecase.NewTeamUseCase(teams, &mocks.Transactor{}, &mocks.AuditSink{}, &mocks.DateParser{})

	negative := -2
	empty := " "
	badGroup := 3

	testCases := []struct {
		name     string
		update   domain.TeamUpdate
		expected error
	}{
		{"Negative value", domain.TeamUpdate{TeamName: "Lions", Delta: domain.TeamDelta{MatchPoints: &negative}}, domain.ErrNegativeValue},
		{"Empty new name", domain.TeamUpdate{TeamName: "Lions", NewName: &empty}, domain.ErrInvalidTeamName},
		{"Bad group", domain.TeamUpdate{TeamName: "Lions", GroupNumber: &badGroup}, domain.ErrInvalidGroupNumber},
		{"Unknown team", domain.TeamUpdate{TeamName: "Ghosts"}, domain.ErrTeamNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := uc.UpdateTeam(ctx, domain.OperationAccumulate, tc.update)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, updated)
		})
	}
	assert.Equal(t, 0, teams.saves)
}

func TestTeamUseCase_UpdateTeam_UniqueViolationMapsToNameTaken(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewTeamUseCase(teamRepo, &mocks.Transactor{}, &mocks.AuditSink{}, &mocks.DateParser{})

	newName := "Tigers"
	teamRepo.On("LockByName", ctx, "Lions").Return(&domain.Team{ID: 1, Name: "Lions", GroupNumber: 1}, nil)
	teamRepo.On("ExistsTeam", ctx, "Tigers").Return(false, nil)
	teamRepo.On("Save", ctx, mock.AnythingOfType("*domain.Team")).Return(nil, domain.ErrTeamAlreadyExists)

	updated, err := uc.UpdateTeam(ctx, domain.OperationReplace, domain.TeamUpdate{TeamName: "Lions", NewName: &newName})

	assert.ErrorIs(t, err, domain.ErrTeamNameTaken)
	assert.Nil(t, updated)
	teamRepo.AssertExpectations(t)
}

func TestTeamUseCase_RegisterTeams_NameLength(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	dates := &mocks.DateParser{}
	uc := usecase.NewTeamUseCase(teamRepo, &mocks.Transactor{}, &mocks.AuditSink{}, dates)

	longest := strings.Repeat("я", domain.MaxTeamNameLength)
	tooLong := strings.Repeat("x", domain.MaxTeamNameLength+1)

	dates.On("Parse", "17/03").Return(regDate, nil)
	teamRepo.On("ExistsTeam", ctx, longest).Return(false, nil)
	teamRepo.On("ExistsTeam", ctx, "ok").Return(false, nil)
	teamRepo.On("SaveAll", ctx, mock.MatchedBy(func(teams []*domain.Team) bool {
		return len(teams) == 2 && teams[0].Name == longest && teams[1].Name == "ok"
	})).Return(nil)

	result, err := uc.RegisterTeams(ctx, []domain.TeamRegistration{
		{Name: tooLong, RegistrationDate: "17/03", GroupNumber: 1},
		{Name: longest, RegistrationDate: "17/03", GroupNumber: 1},
		{Name: "ok", RegistrationDate: "17/03", GroupNumber: 2},
	})

	require.NoError(t, err)
	assert.Len(t, result.ValidData, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Error processing team for "+tooLong+": team name is too long", result.Errors[0])
	teamRepo.AssertExpectations(t)
}

func TestTeamUseCase_UpdateTeam_Limits(t *testing.T) {
	ctx := context.Background()
	teams := newMemTeamRepo(domain.Team{Name: "Lions", GroupNumber: 1, TotalGoals: domain.MaxStatValue - 1})
	uc := usecase.NewTeamUseCase(teams, &mocks.Transactor{}, &mocks.AuditSink{}, &mocks.DateParser{})

	tooLong := strings.Repeat("x", domain.MaxTeamNameLength+1)
	two := 2
	huge := domain.MaxStatValue
	huge++

	testCases := []struct {
		name     string
		op       domain.UpdateOperation
		update   domain.TeamUpdate
		expected error
	}{
		{"Rename too long", domain.OperationReplace, domain.TeamUpdate{TeamName: "Lions", NewName: &tooLong}, domain.ErrTeamNameTooLong},
		{"Delta above maximum", domain.OperationReplace, domain.TeamUpdate{TeamName: "Lions", Delta: domain.TeamDelta{MatchPoints: &huge}}, domain.ErrValueTooLarge},
		{"Accumulate past maximum", domain.OperationAccumulate, domain.TeamUpdate{TeamName: "Lions", Delta: domain.TeamDelta{TotalGoals: &two}}, domain.ErrValueTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := uc.UpdateTeam(ctx, tc.op, tc.update)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, updated)
		})
	}
	assert.Equal(t, 0, teams.saves)
	assert.Equal(t, domain.MaxStatValue-1, teams.get("Lions").TotalGoals)
}
