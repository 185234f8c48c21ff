package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"supportpulse.app/pulse/core/db"
	"supportpulse.app/pulse/internal/model"
)

type pulseCheckStore struct {
	q db.DBTX
}

func newPulseCheckStore(q db.DBTX) PulseCheckStore {
	return &pulseCheckStore{q: q}
}

const pulseCheckColumns = `id, created_at, date_range_start, date_range_end,
    ticket_count, open_count, closed_count,
    resolution_avg_min, resolution_p50_min, resolution_p90_min,
    tickets_analyzed, spam_pct, unassigned_pct, channel_email, channel_chat,
    workload, top_questions, tags, ops_notes`

func (s *pulseCheckStore) Any(ctx context.Context) (bool, error) {
	var exists bool
	if err := s.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pulse_checks)`).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *pulseCheckStore) Create(ctx context.Context, c *model.PulseCheck) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO pulse_checks (`+pulseCheckColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		c.ID, c.CreatedAt, c.DateRangeStart, c.DateRangeEnd,
		c.TicketCount, c.OpenCount, c.ClosedCount,
		c.ResolutionAvgMin, c.ResolutionP50Min, c.ResolutionP90Min,
		c.TicketsAnalyzed, c.SpamPct, c.UnassignedPct, c.ChannelEmail, c.ChannelChat,
		c.Workload, c.TopQuestions, c.Tags, c.OpsNotes,
	)
	return err
}

func (s *pulseCheckStore) GetByID(ctx context.Context, id uuid.UUID) (*model.PulseCheck, error) {
	rows, err := s.q.Query(ctx, `SELECT `+pulseCheckColumns+` FROM pulse_checks WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	check, err := pgx.CollectExactlyOneRow(rows, scanPulseCheck)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &check, nil
}

func (s *pulseCheckStore) ListRecent(ctx context.Context, limit int32) ([]model.PulseCheck, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+pulseCheckColumns+` FROM pulse_checks ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanPulseCheck)
}

func scanPulseCheck(row pgx.CollectableRow) (model.PulseCheck, error) {
	var c model.PulseCheck
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.DateRangeStart, &c.DateRangeEnd,
		&c.TicketCount, &c.OpenCount, &c.ClosedCount,
		&c.ResolutionAvgMin, &c.ResolutionP50Min, &c.ResolutionP90Min,
		&c.TicketsAnalyzed, &c.SpamPct, &c.UnassignedPct, &c.ChannelEmail, &c.ChannelChat,
		&c.Workload, &c.TopQuestions, &c.Tags, &c.OpsNotes,
	)
	return c, err
}
