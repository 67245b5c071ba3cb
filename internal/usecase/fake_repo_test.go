package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"football-championship/internal/domain"
)

var errStorage = errors.New("storage unavailable")

// memTeamRepo хранит команды в памяти и копирует их на входе и выходе,
// как это делает настоящее хранилище.
type memTeamRepo struct {
	mu      sync.Mutex
	teams   map[string]domain.Team
	nextID  int64
	saveErr error
	saves   int
	lockLog []string
}

func newMemTeamRepo(teams ...domain.Team) *memTeamRepo {
	r := &memTeamRepo{teams: make(map[string]domain.Team)}
	for _, t := range teams {
		r.nextID++
		t.ID = r.nextID
		r.teams[t.Name] = t
	}
	return r
}

func (r *memTeamRepo) get(name string) domain.Team {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.teams[name]
}

func (r *memTeamRepo) FindByName(_ context.Context, name string) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[name]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return &t, nil
}

func (r *memTeamRepo) LockByName(ctx context.Context, name string) (*domain.Team, error) {
	r.mu.Lock()
	r.lockLog = append(r.lockLog, name)
	r.mu.Unlock()
	return r.FindByName(ctx, name)
}

func (r *memTeamRepo) FindByGroup(_ context.Context, groupNumber int) ([]*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Team, 0)
	for _, t := range r.teams {
		if t.GroupNumber == groupNumber {
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTeamRepo) ExistsTeam(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.teams[name]
	return ok, nil
}

func (r *memTeamRepo) Save(_ context.Context, team *domain.Team) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saves++
	if team.ID == 0 {
		r.nextID++
		team.ID = r.nextID
	}
	for name, t := range r.teams {
		if t.ID == team.ID && name != team.Name {
			delete(r.teams, name)
		}
	}
	r.teams[team.Name] = *team
	return team, nil
}

func (r *memTeamRepo) SaveAll(ctx context.Context, teams []*domain.Team) error {
	for _, t := range teams {
		if _, err := r.Save(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *memTeamRepo) DeleteByName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[name]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(r.teams, name)
	return nil
}

type memMatchRepo struct {
	matches []*domain.Match
	saveErr error
}

func (r *memMatchRepo) SaveAll(_ context.Context, matches []*domain.Match) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, m := range matches {
		m.ID = int64(len(r.matches) + 1)
		r.matches = append(r.matches, m)
	}
	return nil
}

func (r *memMatchRepo) ListByTeam(_ context.Context, teamName string) ([]*domain.Match, error) {
	out := make([]*domain.Match, 0)
	for _, m := range r.matches {
		if m.TeamA == teamName || m.TeamB == teamName {
			out = append(out, m)
		}
	}
	return out, nil
}
