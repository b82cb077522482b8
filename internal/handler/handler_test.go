package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/config"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
	"github.com/hostelhq/outpass-backend/internal/response"
	"github.com/hostelhq/outpass-backend/internal/service"
	"github.com/hostelhq/outpass-backend/internal/validator"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *response.ErrorBody        `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

// ─── In-memory stores ───────────────────────────────────────────────────

type memAdminStore struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
}

func newMemAdminStore() *memAdminStore {
	return &memAdminStore{admins: make(map[string]*model.Admin)}
}

func (m *memAdminStore) GetByID(_ context.Context, id string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAdminStore) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAdminStore) Create(_ context.Context, a *model.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.admins[a.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	cp := *a
	m.admins[a.Username] = &cp
	return nil
}

type memGatePassStore struct {
	mu     sync.Mutex
	passes map[string]*model.GatePassRequest
}

func newMemGatePassStore() *memGatePassStore {
	return &memGatePassStore{passes: make(map[string]*model.GatePassRequest)}
}

func (m *memGatePassStore) GetByID(_ context.Context, id string) (*model.GatePassRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memGatePassStore) List(_ context.Context, filter model.GatePassFilter) ([]model.GatePassRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.GatePassRequest
	for _, g := range m.passes {
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

func (m *memGatePassStore) Create(_ context.Context, g *model.GatePassRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	cp := *g
	m.passes[g.ID] = &cp
	return nil
}

func (m *memGatePassStore) Approve(_ context.Context, id, approver string) (*model.GatePassRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	g.Submitted = true
	g.ApprovedBy = &approver
	cp := *g
	return &cp, nil
}

func (m *memGatePassStore) MarkOut(_ context.Context, id string) (*model.GatePassRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	g.OutTime = &now
	cp := *g
	return &cp, nil
}

func (m *memGatePassStore) MarkIn(_ context.Context, id string) (*model.GatePassRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	g.InTime = &now
	g.Returned = true
	cp := *g
	return &cp, nil
}

func (m *memGatePassStore) DeleteMany(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.passes, id)
	}
	return nil
}

func (m *memGatePassStore) Stats(_ context.Context) (*model.GatePassStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &model.GatePassStats{}
	for _, g := range m.passes {
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

// Interface conformance for the fakes.
var (
	_ service.AdminStore    = (*memAdminStore)(nil)
	_ service.GatePassStore = (*memGatePassStore)(nil)
)

func postJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func newGatePassServiceForTest(store *memGatePassStore) *service.GatePassService {
	return service.NewGatePassService(store, testConfig(), nil, zerolog.Nop())
}
