package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gatePassColumns = `id, name, register_no, room_number, reason, village,
	phone_number, photo, days, submitted, approved_by, returned,
	out_time, in_time, created_at, updated_at`

// GatePassRepository handles gate-pass data access.
type GatePassRepository struct {
	pool *pgxpool.Pool
}

// NewGatePassRepository creates a new GatePassRepository.
func NewGatePassRepository(pool *pgxpool.Pool) *GatePassRepository {
	return &GatePassRepository{pool: pool}
}

func scanGatePass(row pgx.Row) (*model.GatePassRequest, error) {
	g := &model.GatePassRequest{}
	err := row.Scan(
		&g.ID, &g.Name, &g.RegisterNo, &g.RoomNumber, &g.Reason, &g.Village,
		&g.PhoneNumber, &g.Photo, &g.Days, &g.Submitted, &g.ApprovedBy, &g.Returned,
		&g.OutTime, &g.InTime, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// GetByID retrieves a gate-pass request by ID. A malformed id cannot match
// any row, so it is reported as not-found without a query; pgx would
// otherwise fail to encode it against the uuid column.
func (r *GatePassRepository) GetByID(ctx context.Context, id string) (*model.GatePassRequest, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	return scanGatePass(r.pool.QueryRow(ctx,
		`SELECT `+gatePassColumns+` FROM gate_passes WHERE id = $1`, id))
}

// List retrieves gate-pass requests, newest first, with optional filters.
func (r *GatePassRepository) List(ctx context.Context, filter model.GatePassFilter) ([]model.GatePassRequest, error) {
	query := `SELECT ` + gatePassColumns + ` FROM gate_passes`
	var args []interface{}
	var conds []string

	if filter.Submitted != nil {
		args = append(args, *filter.Submitted)
		conds = append(conds, `submitted = $`+strconv.Itoa(len(args)))
	}
	if filter.Returned != nil {
		args = append(args, *filter.Returned)
		conds = append(conds, `returned = $`+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, `created_at >= $`+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, `created_at <= $`+strconv.Itoa(len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passes []model.GatePassRequest
	for rows.Next() {
		g, err := scanGatePass(rows)
		if err != nil {
			return nil, err
		}
		passes = append(passes, *g)
	}
	return passes, rows.Err()
}

// Create inserts a new gate-pass request.
func (r *GatePassRepository) Create(ctx context.Context, g *model.GatePassRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO gate_passes (id, name, register_no, room_number, reason, village, phone_number, photo, days)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		g.ID, g.Name, g.RegisterNo, g.RoomNumber, g.Reason, g.Village, g.PhoneNumber, g.Photo, g.Days,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
}

// Approve marks a request submitted and records the approver in one
// statement, so concurrent approvals resolve last-write-wins at the row.
func (r *GatePassRepository) Approve(ctx context.Context, id, approver string) (*model.GatePassRequest, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	return scanGatePass(r.pool.QueryRow(ctx,
		`UPDATE gate_passes
		 SET submitted = TRUE, approved_by = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1
		 RETURNING `+gatePassColumns, id, approver))
}

// MarkOut records the gate check-out time.
func (r *GatePassRepository) MarkOut(ctx context.Context, id string) (*model.GatePassRequest, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	return scanGatePass(r.pool.QueryRow(ctx,
		`UPDATE gate_passes
		 SET out_time = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1
		 RETURNING `+gatePassColumns, id))
}

// MarkIn records the gate check-in time and flags the student as returned.
func (r *GatePassRepository) MarkIn(ctx context.Context, id string) (*model.GatePassRequest, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}
	return scanGatePass(r.pool.QueryRow(ctx,
		`UPDATE gate_passes
		 SET in_time = CURRENT_TIMESTAMP, returned = TRUE, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1
		 RETURNING `+gatePassColumns, id))
}

// DeleteMany removes all records whose id is in ids. Ids with no matching
// record are ignored; the delete is idempotent. Malformed ids are dropped
// from the set up front so one bad entry cannot fail the whole batch.
func (r *GatePassRepository) DeleteMany(ctx context.Context, ids []string) error {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if uuid.Validate(id) == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM gate_passes WHERE id = ANY($1)`, valid)
	return err
}

// Stats returns the dashboard counters in a single round trip.
func (r *GatePassRepository) Stats(ctx context.Context) (*model.GatePassStats, error) {
	s := &model.GatePassStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE NOT submitted),
		        COUNT(*) FILTER (WHERE out_time IS NOT NULL AND NOT returned)
		 FROM gate_passes`,
	).Scan(&s.Total, &s.Pending, &s.Out)
	if err != nil {
		return nil, err
	}
	return s, nil
}
