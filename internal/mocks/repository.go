// Package mocks содержит testify-моки интерфейсов domain для unit-тестов.
package mocks

import (
	"context"
	"time"

	"football-championship/internal/domain"

	"github.com/stretchr/testify/mock"
)

type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) FindByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if t := args.Get(0); t != nil {
		return t.(*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) LockByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if t := args.Get(0); t != nil {
		return t.(*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) FindByGroup(ctx context.Context, groupNumber int) ([]*domain.Team, error) {
	args := m.Called(ctx, groupNumber)
	if t := args.Get(0); t != nil {
		return t.([]*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) ExistsTeam(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *TeamRepository) Save(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	args := m.Called(ctx, team)
	if t := args.Get(0); t != nil {
		return t.(*domain.Team), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) SaveAll(ctx context.Context, teams []*domain.Team) error {
	args := m.Called(ctx, teams)
	return args.Error(0)
}

func (m *TeamRepository) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type MatchRepository struct {
	mock.Mock
}

func (m *MatchRepository) SaveAll(ctx context.Context, matches []*domain.Match) error {
	args := m.Called(ctx, matches)
	return args.Error(0)
}

func (m *MatchRepository) ListByTeam(ctx context.Context, teamName string) ([]*domain.Match, error) {
	args := m.Called(ctx, teamName)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

// AuditSink запоминает записи журнала, ожидания не требуются.
type AuditSink struct {
	Entries []domain.AuditEntry
}

func (a *AuditSink) Record(_ context.Context, entry domain.AuditEntry) {
	a.Entries = append(a.Entries, entry)
}

type DateParser struct {
	mock.Mock
}

func (m *DateParser) Parse(value string) (time.Time, error) {
	args := m.Called(value)
	return args.Get(0).(time.Time), args.Error(1)
}

// Transactor вызывает fn без транзакции и считает вызовы.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
