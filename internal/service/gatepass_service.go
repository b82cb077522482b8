package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hostelhq/outpass-backend/internal/config"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// GatePassStore is the narrow data access surface GatePassService needs.
// *repository.GatePassRepository satisfies it; tests use an in-memory fake.
type GatePassStore interface {
	GetByID(ctx context.Context, id string) (*model.GatePassRequest, error)
	List(ctx context.Context, filter model.GatePassFilter) ([]model.GatePassRequest, error)
	Create(ctx context.Context, g *model.GatePassRequest) error
	Approve(ctx context.Context, id, approver string) (*model.GatePassRequest, error)
	MarkOut(ctx context.Context, id string) (*model.GatePassRequest, error)
	MarkIn(ctx context.Context, id string) (*model.GatePassRequest, error)
	DeleteMany(ctx context.Context, ids []string) error
	Stats(ctx context.Context) (*model.GatePassStats, error)
}

// GatePassService handles outing request business logic. The unfiltered
// listing and the dashboard counters are cached in Redis because both
// dashboards poll them; every mutation invalidates the cache.
type GatePassService struct {
	store GatePassStore
	rdb   *redis.Client
	cfg   *config.Config
	log   zerolog.Logger
}

// NewGatePassService creates a new GatePassService. rdb may be nil, in
// which case caching is disabled and every read hits the store.
func NewGatePassService(store GatePassStore, cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *GatePassService {
	return &GatePassService{store: store, rdb: rdb, cfg: cfg, log: log}
}

// Get retrieves a single gate-pass request, cached per record.
func (s *GatePassService) Get(ctx context.Context, id string) (*model.GatePassRequest, error) {
	if s.rdb == nil {
		return s.store.GetByID(ctx, id)
	}

	key := config.CacheKey.GatePassKey(id)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		g := &model.GatePassRequest{}
		if err := json.Unmarshal([]byte(cached), g); err == nil {
			return g, nil
		}
	}

	g, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(g); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.CacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Gate-pass record cache write failed")
		}
	}
	return g, nil
}

// List retrieves gate-pass requests, newest first. Only the unfiltered
// listing goes through the cache; filtered reads are too varied to be
// worth individual entries.
func (s *GatePassService) List(ctx context.Context, filter model.GatePassFilter) ([]model.GatePassRequest, error) {
	if !filter.Empty() || s.rdb == nil {
		return s.store.List(ctx, filter)
	}

	key := config.CacheKey.GatePassListKey()
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var passes []model.GatePassRequest
		if err := json.Unmarshal([]byte(cached), &passes); err == nil {
			return passes, nil
		}
	}

	passes, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(passes); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.CacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Gate-pass list cache write failed")
		}
	}
	return passes, nil
}

// Create records a new outing request submitted by a student.
func (s *GatePassService) Create(ctx context.Context, req model.CreateGatePassRequest) (*model.GatePassRequest, error) {
	g := &model.GatePassRequest{
		ID:          uuid.New().String(),
		Name:        req.Name,
		RegisterNo:  req.RegisterNo,
		RoomNumber:  req.RoomNumber,
		Reason:      req.Reason,
		Village:     req.Village,
		PhoneNumber: req.PhoneNumber,
		Photo:       req.Photo,
		Days:        req.Days,
	}
	if err := s.store.Create(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return g, nil
}

// Approve marks a request submitted and records the approver's display
// name. The transition is one-directional; repeated approvals overwrite
// the approver (last write wins).
func (s *GatePassService) Approve(ctx context.Context, id, approver string) (*model.GatePassRequest, error) {
	g, err := s.store.Approve(ctx, id, approver)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return g, nil
}

// MarkOut records that the student has left through the gate.
func (s *GatePassService) MarkOut(ctx context.Context, id string) (*model.GatePassRequest, error) {
	g, err := s.store.MarkOut(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return g, nil
}

// MarkIn records that the student has come back through the gate.
func (s *GatePassService) MarkIn(ctx context.Context, id string) (*model.GatePassRequest, error) {
	g, err := s.store.MarkIn(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return g, nil
}

// DeleteMany removes the identified requests. Ids that do not exist are
// silently ignored, and the requested id set is echoed back unchanged.
func (s *GatePassService) DeleteMany(ctx context.Context, ids []string) ([]string, error) {
	if err := s.store.DeleteMany(ctx, ids); err != nil {
		return nil, err
	}
	s.invalidate(ctx, ids...)
	return ids, nil
}

// Stats returns the dashboard counters, cached briefly.
func (s *GatePassService) Stats(ctx context.Context) (*model.GatePassStats, error) {
	if s.rdb == nil {
		return s.store.Stats(ctx)
	}

	key := config.CacheKey.GatePassStatsKey()
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		stats := &model.GatePassStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.CacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Gate-pass stats cache write failed")
		}
	}
	return stats, nil
}

// invalidate drops the shared listing and stats entries plus the per-record
// entries for any ids touched by the mutation.
func (s *GatePassService) invalidate(ctx context.Context, ids ...string) {
	if s.rdb == nil {
		return
	}
	keys := []string{config.CacheKey.GatePassListKey(), config.CacheKey.GatePassStatsKey()}
	for _, id := range ids {
		keys = append(keys, config.CacheKey.GatePassKey(id))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Gate-pass cache invalidation failed")
	}
}
