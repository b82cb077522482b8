package service

import (
	"context"
	"sync"
	"time"

	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
)

// fakeAdminStore is a thread-safe in-memory AdminStore for tests.
type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[string]*model.Admin // key: username
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*model.Admin)}
}

func (f *fakeAdminStore) GetByID(_ context.Context, id string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) Create(_ context.Context, a *model.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.admins[a.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	f.admins[a.Username] = &cp
	return nil
}

// fakeGatePassStore is a thread-safe in-memory GatePassStore for tests.
type fakeGatePassStore struct {
	mu     sync.Mutex
	passes map[string]*model.GatePassRequest
}

func newFakeGatePassStore() *fakeGatePassStore {
	return &fakeGatePassStore{passes: make(map[string]*model.GatePassRequest)}
}

func (f *fakeGatePassStore) GetByID(_ context.Context, id string) (*model.GatePassRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGatePassStore) List(_ context.Context, filter model.GatePassFilter) ([]model.GatePassRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.GatePassRequest
	for _, g := range f.passes {
		if filter.Submitted != nil && g.Submitted != *filter.Submitted {
			continue
		}
		if filter.Returned != nil && g.Returned != *filter.Returned {
			continue
		}
		if filter.From != nil && g.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && g.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGatePassStore) Create(_ context.Context, g *model.GatePassRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	cp := *g
	f.passes[g.ID] = &cp
	return nil
}

func (f *fakeGatePassStore) Approve(_ context.Context, id, approver string) (*model.GatePassRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	g.Submitted = true
	g.ApprovedBy = &approver
	g.UpdatedAt = time.Now()
	cp := *g
	return &cp, nil
}

func (f *fakeGatePassStore) MarkOut(_ context.Context, id string) (*model.GatePassRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	g.OutTime = &now
	g.UpdatedAt = now
	cp := *g
	return &cp, nil
}

func (f *fakeGatePassStore) MarkIn(_ context.Context, id string) (*model.GatePassRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	g.InTime = &now
	g.Returned = true
	g.UpdatedAt = now
	cp := *g
	return &cp, nil
}

func (f *fakeGatePassStore) DeleteMany(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.passes, id)
	}
	return nil
}

func (f *fakeGatePassStore) Stats(_ context.Context) (*model.GatePassStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &model.GatePassStats{}
	for _, g := range f.passes {
		s.Total++
		if !g.Submitted {
			s.Pending++
		}
		if g.OutTime != nil && !g.Returned {
			s.Out++
		}
	}
	return s, nil
}
